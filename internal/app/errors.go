package app

import "errors"

var (
	// ErrOffsetRequired : ni --offset ni default_offset.
	ErrOffsetRequired = errors.New("temps de report manquant (--offset ou default_offset)")

	// ErrReadInput et ErrWriteOutput signalent une erreur d'entrée/sortie.
	ErrReadInput   = errors.New("lecture de la TL impossible")
	ErrWriteOutput = errors.New("écriture du résultat impossible")

	// ErrCopyFailed : aucun mécanisme de copie n'a fonctionné.
	ErrCopyFailed = errors.New("copie dans le presse-papier impossible")
)
