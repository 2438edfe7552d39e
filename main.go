package main

import "github.com/Yannari/app-market-analysis/cmd"

func main() {
	cmd.Execute()
}
