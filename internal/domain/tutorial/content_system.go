package tutorial

const (
	systemInformation = "System Information"
	systemControl     = "System Control"
)

func systemTable() categoryTable {
	return categoryTable{
		meta: Category{
			ID:    CategorySystem,
			Title: "⚙️ System Commands",
			Label: "⚙️ System Commands (ps, df, date...)",
		},
		records: []CommandRecord{
			{
				Name:        "whoami",
				Category:    systemInformation,
				Description: "Show who you are (your username)",
				Explanation: `'whoami' tells you what your username is on the computer.
It's like asking 'What's my name on this computer?'`,
				Examples: []Example{
					{Command: "whoami", Explanation: "Show your username"},
				},
				Tip:    "This is useful to know which user account you're using!",
				Safety: "This only shows information - completely safe.",
			},
			{
				Name:        "date",
				Category:    systemInformation,
				Description: "Show the current date and time",
				Explanation: `'date' shows what day and time it is right now,
like looking at a clock and calendar!`,
				Examples: []Example{
					{Command: "date", Explanation: "Show current date and time"},
					{Command: "date +%Y-%m-%d", Explanation: "Show date in a specific format"},
				},
				Tip:    "The computer's time might be different from your local time!",
				Safety: "This only shows information - safe to use.",
			},
			{
				Name:        "ps",
				Category:    systemInformation,
				Description: "Show what programs are running",
				Explanation: `'ps' shows all the programs that are currently running on your computer,
like seeing all the apps that are open!`,
				Examples: []Example{
					{Command: "ps", Explanation: "Show your running programs"},
					{Command: "ps aux", Explanation: "Show all programs running on the computer"},
				},
				Tip:    "Each line shows a different program that's running!",
				Safety: "This only shows information - doesn't change anything.",
			},
			{
				Name:        "df",
				Category:    systemInformation,
				Description: "Show how much space is left on your computer",
				Explanation: `'df' shows how much storage space you have left, like checking how much room
is left in your toy box!`,
				Examples: []Example{
					{Command: "df -h", Explanation: "Show disk space in a human-readable format"},
				},
				Tip:    "The -h flag makes numbers easier to read (like 5G instead of 5000000000)!",
				Safety: "This only shows information - safe to use.",
			},
			{
				Name:        "free",
				Category:    systemInformation,
				Description: "Show how much memory (RAM) is being used",
				Explanation: `'free' shows how much memory your computer is using right now.
Think of it like checking how much of your desk space is being used!`,
				Examples: []Example{
					{Command: "free -h", Explanation: "Show memory usage in human-readable format"},
				},
				Tip:    "If 'Used' is close to 'Total', your computer might be slow!",
				Safety: "This only shows information - completely safe.",
			},
			{
				Name:        "history",
				Category:    systemInformation,
				Description: "Show the last commands you typed",
				Explanation: `'history' shows a list of all the commands you've typed recently,
like a diary of what you've been doing in the terminal!`,
				Examples: []Example{
					{Command: "history", Explanation: "Show all recent commands"},
					{Command: "history | tail -10", Explanation: "Show only the last 10 commands"},
				},
				Tip:    "Use the up arrow key to repeat previous commands!",
				Safety: "This only shows your command history - safe to use.",
			},
			{
				Name:        "reboot",
				Category:    systemControl,
				Description: "Restart the computer",
				Explanation: `'reboot' restarts your computer, like turning it off and on again.
Make sure to save your work first!`,
				Examples: []Example{
					{Command: "sudo reboot", Explanation: "Restart the computer (needs admin permission)"},
				},
				Tip:    "ALWAYS save your work before rebooting!",
				Safety: "CAREFUL! This will restart your computer and close all programs.",
			},
			{
				Name:        "shutdown",
				Category:    systemControl,
				Description: "Turn off the computer",
				Explanation: `'shutdown' turns off your computer safely. It's like pressing the power button
but in a safe way that doesn't damage your files.`,
				Examples: []Example{
					{Command: "sudo shutdown now", Explanation: "Turn off the computer immediately"},
					{Command: "sudo shutdown +5", Explanation: "Turn off the computer in 5 minutes"},
				},
				Tip:    "Always save your work before shutting down!",
				Safety: "CAREFUL! This will turn off your computer.",
			},
		},
	}
}
