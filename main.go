package main

import "daffa.dev/daffash/cmd"

func main() {
	cmd.Execute()
}
