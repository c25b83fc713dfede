package tutorial

const networkCommands = "Network Commands"

func networkTable() categoryTable {
	return categoryTable{
		meta: Category{
			ID:    CategoryNetwork,
			Title: "🌐 Network Commands",
			Label: "🌐 Network Commands (ping, wget...)",
		},
		records: []CommandRecord{
			{
				Name:        "ping",
				Category:    networkCommands,
				Description: "Test if you can reach a website or computer",
				Explanation: `'ping' is like knocking on someone's door to see if they're home!
It sends a message to another computer and waits for a reply.`,
				Examples: []Example{
					{Command: "ping google.com", Explanation: "Check if you can reach Google"},
					{Command: "ping -c 4 google.com", Explanation: "Send only 4 pings and stop"},
				},
				Tip:    "Use Ctrl+C to stop pinging!",
				Safety: "This only tests connections - it's harmless.",
			},
			{
				Name:        "wget",
				Category:    networkCommands,
				Description: "Download files from the internet",
				Explanation: `'wget' is like a robot that goes to the internet and brings back files for you!
You give it a web address, and it downloads the file.`,
				Examples: []Example{
					{Command: "wget https://example.com/file.txt", Explanation: "Download a file from the internet"},
					{Command: "wget -O newname.txt https://example.com/file.txt", Explanation: "Download and give it a different name"},
				},
				Tip:    "Always be careful what you download from the internet!",
				Safety: "Only download files from trusted websites.",
			},
			{
				Name:        "curl",
				Category:    networkCommands,
				Description: "Get or send data from/to servers",
				Explanation: `'curl' is like a messenger that can talk to websites and servers.
It can ask for information or send messages.`,
				Examples: []Example{
					{Command: "curl https://example.com", Explanation: "Get a webpage's content"},
					{Command: "curl -I https://example.com", Explanation: "Get information about a webpage"},
				},
				Tip:    "curl is very powerful - ask an adult before using it!",
				Safety: "Be careful - curl can send data to the internet.",
			},
			{
				Name:        "ifconfig",
				Category:    networkCommands,
				Description: "See your computer's network information",
				Explanation: `'ifconfig' shows your computer's network details, like your address on the internet!
It's like checking your postal address.`,
				Examples: []Example{
					{Command: "ifconfig", Explanation: "Show all network information"},
					{Command: "ip addr", Explanation: "A modern way to see network info"},
				},
				Tip:    "Look for 'inet' to find your IP address!",
				Safety: "This only shows information - it's completely safe.",
			},
		},
	}
}
