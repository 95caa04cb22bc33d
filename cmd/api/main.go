package main

//go:generate swag init -g main.go -d ./,../../internal/api/handlers -o ../../internal/api/docs --parseDependency --parseInternal

// @title ARCANO API
// @version 1.4.0
// @description Backend of the ARCANO military police system: SAC reports and shares, operations, teams, vehicles and equipment custody.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	Execute()
}
