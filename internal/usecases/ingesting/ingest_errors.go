package ingesting

import "errors"

var (
	// ErrInputUnavailable indica que a requisição não trouxe nem arquivo
	// nem parâmetros de banco de dados
	ErrInputUnavailable = errors.New("nenhuma origem de dados fornecida: envie um arquivo ou conecte a um banco de dados")

	// ErrMalformedUpload indica falha ao interpretar o arquivo enviado
	ErrMalformedUpload = errors.New("não foi possível interpretar o arquivo enviado")

	// ErrEmptyUpload indica um arquivo sem linha de cabeçalho
	ErrEmptyUpload = errors.New("arquivo enviado está vazio (sem linha de cabeçalho)")
)
