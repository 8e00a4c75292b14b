package main

import (
	"net/http"
	"os"

	"github.com/JEFConsultoria/api-gestao/internal/alerta"
	"github.com/JEFConsultoria/api-gestao/internal/alocacao"
	"github.com/JEFConsultoria/api-gestao/internal/auth"
	"github.com/JEFConsultoria/api-gestao/internal/bi"
	"github.com/JEFConsultoria/api-gestao/internal/chatbot"
	"github.com/JEFConsultoria/api-gestao/internal/consultor"
	"github.com/JEFConsultoria/api-gestao/internal/contato"
	"github.com/JEFConsultoria/api-gestao/internal/contrato"
	"github.com/JEFConsultoria/api-gestao/internal/cronograma"
	"github.com/JEFConsultoria/api-gestao/internal/empresa"
	"github.com/JEFConsultoria/api-gestao/internal/feriado"
	"github.com/JEFConsultoria/api-gestao/internal/importacao"
	"github.com/JEFConsultoria/api-gestao/internal/proposta"
	utilsdb "github.com/JEFConsultoria/api-gestao/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Dinheiro e percentuais saem como números no JSON, não strings.
	decimal.MarshalJSONWithoutQuotes = true

	db, err := utilsdb.GetDB()
	if err != nil {
		logger.Fatal("erro ao conectar no banco", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&auth.Usuario{},
		&empresa.Empresa{},
		&consultor.Consultor{},
		&proposta.Proposta{},
		&cronograma.Cronograma{},
		&cronograma.Tarefa{},
		&contrato.Contrato{},
		&alocacao.Alocacao{},
		&contato.Contato{},
		&feriado.Feriado{},
	); err != nil {
		logger.Fatal("erro no AutoMigrate", zap.Error(err))
	}

	if err := auth.SeedAdmin(db); err != nil {
		logger.Fatal("erro ao criar usuário admin", zap.Error(err))
	}

	// Handlers
	authHandler := auth.NewHandler(db)
	empresaHandler := empresa.NewHandler(db)
	consultorHandler := consultor.NewHandler(db)
	propostaHandler := proposta.NewHandler(db)
	cronogramaHandler := cronograma.NewHandler(db)
	contratoHandler := contrato.NewHandler(db)
	alocacaoHandler := alocacao.NewHandler(db)
	contatoHandler := contato.NewHandler(db)
	feriadoHandler := feriado.NewHandler(db)
	alertaHandler := alerta.NewHandler(db)
	biHandler := bi.NewHandler(db)
	chatbotHandler := chatbot.NewHandler(db)
	importacaoHandler := importacao.NewHandler(db, logger)

	r := mux.NewRouter()

	// Login fica fora do middleware de autenticação.
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/auth/me", authHandler.Me).Methods("GET")

	// Rotas de empresas
	api.HandleFunc("/empresas", empresaHandler.Criar).Methods("POST")
	api.HandleFunc("/empresas", empresaHandler.Listar).Methods("GET")
	api.HandleFunc("/empresas/{id}", empresaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/empresas/{id}", empresaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/empresas/{id}", empresaHandler.Deletar).Methods("DELETE")

	// Rotas de consultores
	api.HandleFunc("/consultores", consultorHandler.Criar).Methods("POST")
	api.HandleFunc("/consultores", consultorHandler.Listar).Methods("GET")
	api.HandleFunc("/consultores/{id}", consultorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/consultores/{id}", consultorHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/consultores/{id}", consultorHandler.Deletar).Methods("DELETE")

	// Rotas de propostas
	api.HandleFunc("/propostas", propostaHandler.Criar).Methods("POST")
	api.HandleFunc("/propostas", propostaHandler.Listar).Methods("GET")
	api.HandleFunc("/propostas/{id}", propostaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/propostas/{id}", propostaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/propostas/{id}", propostaHandler.Deletar).Methods("DELETE")

	// Rotas da grade de alocações. Registradas antes de
	// /cronogramas/{id} para o prefixo fixo vencer o parâmetro.
	api.HandleFunc("/cronogramas/alocacoes/listar", alocacaoHandler.Listar).Methods("GET")
	api.HandleFunc("/cronogramas/alocacoes/gantt", alocacaoHandler.Gantt).Methods("GET")
	api.HandleFunc("/cronogramas/alocacoes/estatisticas", alocacaoHandler.Estatisticas).Methods("GET")
	api.HandleFunc("/cronogramas/alocacoes/criar", alocacaoHandler.Criar).Methods("POST")
	api.HandleFunc("/cronogramas/alocacoes/{id:[0-9]+}", alocacaoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/cronogramas/alocacoes/{id:[0-9]+}", alocacaoHandler.Deletar).Methods("DELETE")

	// Rotas de cronogramas
	api.HandleFunc("/cronogramas", cronogramaHandler.Criar).Methods("POST")
	api.HandleFunc("/cronogramas", cronogramaHandler.Listar).Methods("GET")
	api.HandleFunc("/cronogramas/alertas", cronogramaHandler.Alertas).Methods("GET")
	api.HandleFunc("/cronogramas/{id:[0-9]+}", cronogramaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/cronogramas/{id:[0-9]+}", cronogramaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/cronogramas/{id:[0-9]+}", cronogramaHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/cronogramas/{id:[0-9]+}/calcular-progresso", cronogramaHandler.CalcularProgresso).Methods("POST")
	api.HandleFunc("/cronogramas/{id:[0-9]+}/tarefas", cronogramaHandler.AdicionarTarefa).Methods("POST")
	api.HandleFunc("/cronogramas/{id:[0-9]+}/tarefas", cronogramaHandler.ListarTarefas).Methods("GET")

	// Rotas de contratos
	api.HandleFunc("/contratos", contratoHandler.Criar).Methods("POST")
	api.HandleFunc("/contratos", contratoHandler.Listar).Methods("GET")
	api.HandleFunc("/contratos/faturamento", contratoHandler.Faturamento).Methods("GET")
	api.HandleFunc("/contratos/alertas", contratoHandler.Alertas).Methods("GET")
	api.HandleFunc("/contratos/{id:[0-9]+}", contratoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contratos/{id:[0-9]+}", contratoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/contratos/{id:[0-9]+}", contratoHandler.Deletar).Methods("DELETE")

	// Rotas de contatos
	api.HandleFunc("/contatos", contatoHandler.Criar).Methods("POST")
	api.HandleFunc("/contatos", contatoHandler.Listar).Methods("GET")
	api.HandleFunc("/contatos/filtros", contatoHandler.Filtros).Methods("GET")
	api.HandleFunc("/contatos/{id:[0-9]+}", contatoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contatos/{id:[0-9]+}", contatoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/contatos/{id:[0-9]+}", contatoHandler.Deletar).Methods("DELETE")

	// Rotas de feriados
	api.HandleFunc("/feriados", feriadoHandler.Listar).Methods("GET")

	// Rotas de alertas
	api.HandleFunc("/alertas/todos", alertaHandler.Todos).Methods("GET")
	api.HandleFunc("/alertas/resumo", alertaHandler.Resumo).Methods("GET")

	// Rotas de BI
	api.HandleFunc("/bi/dashboard", biHandler.Dashboard).Methods("GET")
	api.HandleFunc("/bi/propostas-por-status", biHandler.PropostasPorStatus).Methods("GET")
	api.HandleFunc("/bi/propostas-por-consultor", biHandler.PropostasPorConsultor).Methods("GET")
	api.HandleFunc("/bi/receita-mensal", biHandler.ReceitaMensal).Methods("GET")
	api.HandleFunc("/bi/produtividade-consultores", biHandler.ProdutividadeConsultores).Methods("GET")

	// Rota do chatbot
	api.HandleFunc("/chatbot/perguntar", chatbotHandler.Perguntar).Methods("POST")

	// Importação é restrita a administradores.
	imports := api.PathPrefix("/importacao").Subrouter()
	imports.Use(auth.RequireAdmin)
	imports.HandleFunc("/empresas", importacaoHandler.Empresas).Methods("POST")
	imports.HandleFunc("/propostas", importacaoHandler.Propostas).Methods("POST")
	imports.HandleFunc("/cronogramas", importacaoHandler.Cronogramas).Methods("POST")
	imports.HandleFunc("/grade", importacaoHandler.Grade).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8000"
	}

	logger.Info("servidor iniciado", zap.String("porta", porta))
	if err := http.ListenAndServe(":"+porta, c.Handler(r)); err != nil {
		logger.Fatal("servidor encerrou com erro", zap.Error(err))
	}
}
