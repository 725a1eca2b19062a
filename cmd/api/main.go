package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/padocadigital/gestao-padaria/internal/infrastructure/database"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	// Aplicar migrações pendentes antes de aceitar requisições
	if os.Getenv("SKIP_MIGRATIONS") != "true" {
		if err := database.RunMigrations(); err != nil {
			log.Fatalf("Erro ao executar migrações: %v", err)
		}
	}

	// Criar aplicação
	app, err := NewApp()
	if err != nil {
		log.Fatalf("Erro ao inicializar aplicação: %v", err)
	}
	defer app.Close()

	// Iniciar o servidor
	if err := app.Start(); err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
}
