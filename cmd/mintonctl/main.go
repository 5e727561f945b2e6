package main

import (
	"github.com/HyunseokSon/Addicton-sub000/internal/cli"
)

func main() {
	cli.Execute()
}
