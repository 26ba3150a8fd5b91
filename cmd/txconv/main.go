/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/ypbank/txconv/cmd/txconv/cmd"
)

func main() {
	cmd.Execute()
}
