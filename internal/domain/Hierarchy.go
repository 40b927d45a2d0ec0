package domain

type VerdictStatus string

const (
	VerdictStatusOK        VerdictStatus = "ok"
	VerdictStatusDenied    VerdictStatus = "denied"
	VerdictStatusTransient VerdictStatus = "transient"
	VerdictStatusSkipped   VerdictStatus = "skipped"
)

// HierarchyVerdict diz se a conta alvo é alcançável sob o agregador.
// Negação e falha transitória são sinais, não erros.
type HierarchyVerdict struct {
	Status VerdictStatus `json:"status"`
	Reason string        `json:"reason,omitempty"`
}

func VerdictOK() HierarchyVerdict {
	return HierarchyVerdict{Status: VerdictStatusOK}
}

func VerdictDenied(reason string) HierarchyVerdict {
	return HierarchyVerdict{Status: VerdictStatusDenied, Reason: reason}
}

func VerdictTransient(reason string) HierarchyVerdict {
	return HierarchyVerdict{Status: VerdictStatusTransient, Reason: reason}
}

func (v HierarchyVerdict) OK() bool {
	return v.Status == VerdictStatusOK
}

// MetricsQuery descreve uma extração de métricas diárias por campanha.
// AggregatorID vazio significa consulta direta, sem cabeçalho de agregador.
type MetricsQuery struct {
	AccessToken     string
	TargetAccountID string
	AggregatorID    string
	DateRange       DateRange
	Platform        string
}
