package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Operation struct {
	ID          int64               `json:"id"`
	GroupID     int64               `json:"groupId"`
	Description *string             `json:"description"`
	Volume      decimal.NullDecimal `json:"volume"`
	Rating      *string             `json:"rating"`
	DueDate     *time.Time          `json:"dueDate"`
	NextPmt     *time.Time          `json:"nextPmt"`
	Guarantees  *string             `json:"guarantees"`
	Titulos     []Titulo            `json:"titulos"`
}

// Titulo é um título (CRI, CRA, debênture) vinculado a uma operação
type Titulo struct {
	ID               int64               `json:"id"`
	OperationID      int64               `json:"operationId"`
	CodigoCetip      *string             `json:"codigo_cetip"`
	Indexador        *string             `json:"indexador"`
	Taxa             decimal.NullDecimal `json:"taxa"`
	Rating           *string             `json:"rating"`
	Vencimento       *time.Time          `json:"vencimento"`
	NextPmt          *time.Time          `json:"nextPmt"`
	Securitizadora   *string             `json:"securitizadora"`
	AgenteFiduciario *string             `json:"agente_fiduciario"`
	VolumeTotal      decimal.NullDecimal `json:"volume_total"`
}

// OperationRow é uma linha do LEFT JOIN entre operações e títulos.
// Os campos titulo_* são nulos quando a operação não possui títulos.
type OperationRow struct {
	ID          int64               `mapstructure:"id"`
	GroupID     int64               `mapstructure:"group_id"`
	Description *string             `mapstructure:"description"`
	Volume      decimal.NullDecimal `mapstructure:"volume"`
	Rating      *string             `mapstructure:"rating"`
	DueDate     *time.Time          `mapstructure:"due_date"`
	NextPmt     *time.Time          `mapstructure:"next_pmt"`
	Guarantees  *string             `mapstructure:"guarantees"`

	TituloID               *int64              `mapstructure:"titulo_id"`
	TituloOperationID      *int64              `mapstructure:"titulo_operation_id"`
	TituloCodigoCetip      *string             `mapstructure:"codigo_cetip"`
	TituloIndexador        *string             `mapstructure:"indexador"`
	TituloTaxa             decimal.NullDecimal `mapstructure:"taxa"`
	TituloRating           *string             `mapstructure:"titulo_rating"`
	TituloVencimento       *time.Time          `mapstructure:"vencimento"`
	TituloNextPmt          *time.Time          `mapstructure:"titulo_next_pmt"`
	TituloSecuritizadora   *string             `mapstructure:"securitizadora"`
	TituloAgenteFiduciario *string             `mapstructure:"agente_fiduciario"`
	TituloVolumeTotal      decimal.NullDecimal `mapstructure:"volume_total"`
}

type RatingVolume struct {
	Rating      *string             `json:"rating" mapstructure:"rating"`
	TotalVolume decimal.NullDecimal `json:"total_volume" mapstructure:"total_volume"`
}
