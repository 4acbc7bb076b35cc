package hexmap

import "errors"

var (
	// ErrInvalidSize indica dimensões de mapa fora de [1, MaxMapSize].
	ErrInvalidSize = errors.New("tamanho de mapa inválido")
	// ErrInvalidPatchSize indica lado de patch fora de [1, MaxPatchSize].
	ErrInvalidPatchSize = errors.New("tamanho de patch inválido")
	// ErrCorruptRecord indica um MapRecord malformado ou inconsistente.
	ErrCorruptRecord = errors.New("registro de mapa corrompido")
	// ErrHeightRange indica altura fora da faixa empacotável [-127, 128].
	ErrHeightRange = errors.New("altura fora da faixa empacotável")
	// ErrMapNotFound indica que o mapa não existe no armazenamento.
	ErrMapNotFound = errors.New("mapa não encontrado")
)
