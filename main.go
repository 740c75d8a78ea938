package main

import "github.com/aminghali/structural-engineering-notebooks/cmd"

func main() {
	cmd.Execute()
}
