package main

import "github.com/jbarone/django-skel/cmd"

func main() {
	cmd.Execute()
}
