package main

import (
	"fmt"

	"credit/cmd"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	cmd.Execute(fmt.Sprintf("%s-%s", version, commit))
}
