package main

// @title           Gestão Padaria API
// @version         1.0
// @description     API de gestão para padarias: fechamento diário de vendas, lançamentos financeiros, catálogo de produtos e escala de funcionários

// @contact.name   API Support
// @contact.email  suporte@padocadigital.com.br

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
