// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/zcash-scale-calc/cmd/zcash-scale-calc/cmd"
)

func main() {
	cmd.Execute()
}
