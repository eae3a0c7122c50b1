// cmd/main.go
package main

import (
	"bank-admin-api/app"

	_ "bank-admin-api/docs"
)

// @title           Bank Admin API
// @version         1.0
// @description     Administrative backend for a mock banking demo.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
func main() {
	app.Run()
}
