// Package erros define os erros de domínio compartilhados pela API.
package erros

import "errors"

var (
	// ErrNaoEncontrado indica que o registro referenciado não existe.
	ErrNaoEncontrado = errors.New("registro não encontrado")
	// ErrConflito indica violação de chave natural (CNPJ, número etc.).
	ErrConflito = errors.New("registro já existe")
	// ErrValidacao indica payload malformado ou campo obrigatório ausente.
	ErrValidacao = errors.New("dados inválidos")
	// ErrProibido indica tentativa de alterar um registro imutável.
	ErrProibido = errors.New("operação não permitida")
)
