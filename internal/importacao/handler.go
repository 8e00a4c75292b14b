package importacao

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/JEFConsultoria/api-gestao/internal/alocacao"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const tamanhoMaximoUpload = 32 << 20 // 32 MiB

type Handler struct {
	Service   *Service
	Alocacoes *alocacao.Repository
}

func NewHandler(db *gorm.DB, logger *zap.Logger) *Handler {
	return &Handler{
		Service:   NewService(db, logger),
		Alocacoes: alocacao.NewRepository(db),
	}
}

// lerUpload extrai o arquivo do form multipart e devolve nome e bytes.
func lerUpload(r *http.Request) (string, []byte, error) {
	if err := r.ParseMultipartForm(tamanhoMaximoUpload); err != nil {
		return "", nil, err
	}
	arquivo, cabecalho, err := r.FormFile("file")
	if err != nil {
		return "", nil, err
	}
	defer arquivo.Close()

	conteudo, err := io.ReadAll(arquivo)
	if err != nil {
		return "", nil, err
	}
	return cabecalho.Filename, conteudo, nil
}

func (h *Handler) importar(w http.ResponseWriter, r *http.Request,
	executar func(*Tabela) (*Resultado, error)) {

	nome, conteudo, err := lerUpload(r)
	if err != nil {
		http.Error(w, "Arquivo ausente ou inválido", http.StatusBadRequest)
		return
	}
	tabela, err := LerArquivo(nome, conteudo)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	resultado, err := executar(tabela)
	if err != nil {
		http.Error(w, "Erro ao processar arquivo", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(resultado)
}

// POST /api/importacao/empresas
func (h *Handler) Empresas(w http.ResponseWriter, r *http.Request) {
	h.importar(w, r, h.Service.ImportarEmpresas)
}

// POST /api/importacao/propostas
func (h *Handler) Propostas(w http.ResponseWriter, r *http.Request) {
	h.importar(w, r, h.Service.ImportarPropostas)
}

// POST /api/importacao/cronogramas
func (h *Handler) Cronogramas(w http.ResponseWriter, r *http.Request) {
	h.importar(w, r, h.Service.ImportarCronogramas)
}

// POST /api/importacao/grade
//
// Recarrega a grade de alocações inteira a partir da planilha. A
// operação é destrutiva: ver alocacao.ImportarGrade.
func (h *Handler) Grade(w http.ResponseWriter, r *http.Request) {
	nome, conteudo, err := lerUpload(r)
	if err != nil {
		http.Error(w, "Arquivo ausente ou inválido", http.StatusBadRequest)
		return
	}
	matriz, err := LerMatriz(nome, conteudo)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	resultado, err := h.Alocacoes.ImportarGrade(matriz)
	if err != nil {
		http.Error(w, "Erro ao importar grade: "+err.Error(), http.StatusBadRequest)
		return
	}
	h.Service.Logger.Info("grade de alocações importada",
		zap.Int("datas", resultado.DatasEncontradas),
		zap.Int("consultores_criados", resultado.ConsultoresCriados),
		zap.Int("alocacoes_criadas", resultado.AlocacoesCriadas))
	json.NewEncoder(w).Encode(resultado)
}
