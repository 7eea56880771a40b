// cmd/purisim/main.go
package main

import (
	"purisim/internal/app"
	"purisim/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
