package server

// General API annotations for OpenAPI generation. Endpoint annotations
// live in the handler files; the served document is
// internal/embedded/openapi/openapi.yaml.
//
// @title Spotmap API
// @version 1.0
// @description Read-only API over the tourist spot catalog of the Tokyo metropolitan area.
// @description
// @description Features:
// @description - Region selection with curated top spots
// @description - Spot listings filtered by region and category, ordered by rating or name
// @description - Navigation targets for region, category shortcut and spot detail screens
//
// @host localhost:8080
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description API key for authentication (optional, configurable)
