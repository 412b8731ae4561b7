package main

import (
	"fmt"

	"github.com/emrekoca/flowex/internal/export"
)

func formatsCmd() {
	for _, name := range export.NewRegistry().Names() {
		fmt.Println(name)
	}
}
