package main

import (
	"urnik-backend/cmd/urnik-cli/commands"
	"urnik-backend/lib/serviceutil"
)

func main() {
	ctx, stop := serviceutil.SignalContext()
	defer stop()
	commands.ExecuteContext(ctx)
}
