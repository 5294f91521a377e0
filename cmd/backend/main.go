package main

import "github.com/pysugar/backend/cmd/base"

func main() {
	base.Run()
}
