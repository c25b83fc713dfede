package tutorial

const (
	fileAndDirectory = "File and Directory Commands"
	fileViewing      = "File Viewing Commands"
)

func basicTable() categoryTable {
	return categoryTable{
		meta: Category{
			ID:    CategoryBasic,
			Title: "📁 Basic Commands",
			Label: "📁 Basic Commands (ls, cd, mkdir...)",
		},
		records: []CommandRecord{
			{
				Name:        "ls",
				Category:    fileAndDirectory,
				Description: "List what's inside a folder (like looking in a box!)",
				Explanation: `The 'ls' command shows you all the files and folders in your current location.
It's like looking inside a box to see what toys are there!`,
				Examples: []Example{
					{Command: "ls", Explanation: "Show all files and folders"},
					{Command: "ls -l", Explanation: "Show files with more details (like size and date)"},
					{Command: "ls -a", Explanation: "Show hidden files too (files that start with a dot)"},
				},
				Tip:    "Try 'ls -la' to see everything with details!",
				Safety: "This command only looks at files - it doesn't change anything.",
			},
			{
				Name:        "cd",
				Category:    fileAndDirectory,
				Description: "Change directory - move to a different folder",
				Explanation: `The 'cd' command helps you move around folders, like walking to different rooms
in your house! Each folder is like a room with different things inside.`,
				Examples: []Example{
					{Command: "cd Documents", Explanation: "Go into the Documents folder"},
					{Command: "cd ..", Explanation: "Go back to the parent folder (like going up one level)"},
					{Command: "cd ~", Explanation: "Go to your home folder (your personal space)"},
					{Command: "cd /", Explanation: "Go to the root folder (the very top of the computer)"},
				},
				Tip:    "Always remember: '..' means 'go back one folder'",
				Safety: "This command only moves you around - it doesn't delete anything.",
			},
			{
				Name:        "pwd",
				Category:    fileAndDirectory,
				Description: "Print working directory - show me where I am",
				Explanation: `When you're lost, 'pwd' tells you exactly where you are! It shows the full path
from the top of the computer to your current location, like your address.`,
				Examples: []Example{
					{Command: "pwd", Explanation: "Show exactly where you are right now"},
				},
				Tip:    "Use this command when you get lost in folders!",
				Safety: "This command only shows information - it's completely safe.",
			},
			{
				Name:        "mkdir",
				Category:    fileAndDirectory,
				Description: "Make directory - create a new folder",
				Explanation: `'mkdir' creates new folders, like making a new box to put things in!
You give it a name, and it makes the folder for you.`,
				Examples: []Example{
					{Command: "mkdir MyFolder", Explanation: "Create a folder called 'MyFolder'"},
					{Command: "mkdir Games Pictures", Explanation: "Create two folders at once"},
					{Command: "mkdir -p Documents/Projects/NewProject", Explanation: "Create nested folders (folders inside folders)"},
				},
				Tip:    "Use -p to create multiple levels of folders at once!",
				Safety: "This creates new folders - it won't overwrite existing ones.",
			},
			{
				Name:        "rmdir",
				Category:    fileAndDirectory,
				Description: "Remove directory - delete an empty folder",
				Explanation: `'rmdir' removes empty folders. Think of it like throwing away an empty box.
It only works if the folder has nothing inside it!`,
				Examples: []Example{
					{Command: "rmdir EmptyFolder", Explanation: "Remove a folder that has nothing inside"},
				},
				Tip:    "The folder must be completely empty for this to work!",
				Safety: "BE CAREFUL! This deletes folders, but only empty ones.",
			},
			{
				Name:        "cp",
				Category:    fileAndDirectory,
				Description: "Copy files and folders",
				Explanation: `'cp' makes copies of files or folders, like using a copy machine!
You can copy something and put the copy in a different place.`,
				Examples: []Example{
					{Command: "cp myfile.txt copy_of_myfile.txt", Explanation: "Make a copy of a file"},
					{Command: "cp myfile.txt Documents/", Explanation: "Copy a file to the Documents folder"},
					{Command: "cp -r MyFolder NewFolder", Explanation: "Copy a whole folder and everything inside it"},
				},
				Tip:    "Use -r to copy folders and everything inside them!",
				Safety: "This makes copies - the original files stay safe.",
			},
			{
				Name:        "mv",
				Category:    fileAndDirectory,
				Description: "Move or rename files and folders",
				Explanation: `'mv' can move files to different folders OR rename them. It's like picking up
your toy and putting it in a different box, or giving it a new name!`,
				Examples: []Example{
					{Command: "mv oldname.txt newname.txt", Explanation: "Rename a file"},
					{Command: "mv myfile.txt Documents/", Explanation: "Move a file to the Documents folder"},
					{Command: "mv MyFolder NewLocation/", Explanation: "Move a folder to a new place"},
				},
				Tip:    "mv can both move AND rename - it's like magic!",
				Safety: "BE CAREFUL! This moves files - they might not be in the same place!",
			},
			{
				Name:        "cat",
				Category:    fileViewing,
				Description: "Show the contents of a file",
				Explanation: `'cat' shows you what's written inside a file, like opening a book to read it!
It displays the text right on your screen.`,
				Examples: []Example{
					{Command: "cat story.txt", Explanation: "Show what's written in story.txt"},
					{Command: "cat file1.txt file2.txt", Explanation: "Show the contents of multiple files"},
				},
				Tip:    "Great for reading small text files quickly!",
				Safety: "This only shows files - it doesn't change them.",
			},
			{
				Name:        "less",
				Category:    fileViewing,
				Description: "View file contents one page at a time",
				Explanation: `'less' shows big files one screen at a time, like reading a book page by page!
You can scroll up and down, and press 'q' to quit.`,
				Examples: []Example{
					{Command: "less bigfile.txt", Explanation: "View a big file one page at a time"},
				},
				Tip:    "Use arrows to navigate, 'q' to quit, '/' to search",
				Safety: "This only views files - it's safe to use.",
			},
			{
				Name:        "touch",
				Category:    fileAndDirectory,
				Description: "Create new empty files or update file timestamps",
				Explanation: `The 'touch' command is like magic fingers that can:
1. Create brand new empty files (like getting a new notebook)
2. Update the timestamp of existing files (like writing the current date on a file)`,
				Examples: []Example{
					{Command: "touch myfile.txt", Explanation: "Create a new empty file called 'myfile.txt'"},
					{Command: "touch notes.txt homework.pdf", Explanation: "Create multiple files at once"},
					{Command: "touch existing_file.txt", Explanation: "Update the last modified time of an existing file"},
					{Command: "touch -t 202401011200 special.txt", Explanation: "Create a file with a specific timestamp (Jan 1, 2024 at noon)"},
				},
				Tip:    "Great for quickly creating files before editing them with nano/vim!",
				Safety: "BE CAREFUL! Won't ask before overwriting existing files with -c flag",
			},
		},
	}
}
