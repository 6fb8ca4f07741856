package main

import "github.com/artisanbay/sellerhub/cmd/sellerhub/cmd"

func main() {
	cmd.Execute()
}
