package main

import "nc-news/commands"

func main() {
	commands.Execute()
}
