package entity

// Status representa a etapa atual da venda no funil.
type Status string

const (
	StatusPending            Status = "pending"
	StatusInProgress         Status = "in_progress"
	StatusAudited            Status = "audited"
	StatusGenerated          Status = "generated"
	StatusAwaitingActivation Status = "awaiting_activation"
	StatusActivated          Status = "activated"
	StatusLost               Status = "lost"
)

// AllStatuses na ordem do funil. "lost" fica por último por ser o desvio terminal.
var AllStatuses = []Status{
	StatusPending,
	StatusInProgress,
	StatusAudited,
	StatusGenerated,
	StatusAwaitingActivation,
	StatusActivated,
	StatusLost,
}

// StatusAction é um alvo legal a partir do status atual e o que ele exige.
type StatusAction struct {
	Target                   Status `json:"target"`
	RequiresInstallationDate bool   `json:"requires_installation_date"`
	RequiresLossReason       bool   `json:"requires_loss_reason"`
}

// forwardPath mapeia cada status ao próximo passo do funil.
var forwardPath = map[Status]Status{
	StatusPending:            StatusInProgress,
	StatusInProgress:         StatusAudited,
	StatusAudited:            StatusGenerated,
	StatusGenerated:          StatusAwaitingActivation,
	StatusAwaitingActivation: StatusActivated,
}

// IsValidStatus informa se o valor pertence ao conjunto fechado de statuses.
func IsValidStatus(s Status) bool {
	for _, v := range AllStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsTerminal informa se o status não admite mais transições.
func IsTerminal(s Status) bool {
	return s == StatusActivated || s == StatusLost
}

// NextActions devolve os alvos legais a partir do status atual, com os campos
// extras que cada um exige. Statuses terminais devolvem lista vazia.
//
// "lost" é alcançável de todo status não terminal e sempre exige motivo:
// o cliente pode desistir mesmo com a instalação já agendada. A data de
// instalação é exigida apenas na entrada em "awaiting_activation"; de lá
// para "activated" ela já foi preenchida.
func NextActions(current Status) []StatusAction {
	if IsTerminal(current) || !IsValidStatus(current) {
		return []StatusAction{}
	}

	next, ok := forwardPath[current]
	if !ok {
		return []StatusAction{}
	}

	return []StatusAction{
		{
			Target:                   next,
			RequiresInstallationDate: next == StatusAwaitingActivation,
		},
		{
			Target:             StatusLost,
			RequiresLossReason: true,
		},
	}
}

// CanTransition informa se o alvo é legal a partir do status atual pelo
// caminho normal (sem o modo privilegiado de pulo livre).
func CanTransition(current, target Status) bool {
	for _, a := range NextActions(current) {
		if a.Target == target {
			return true
		}
	}
	return false
}

// RequirementsFor devolve as exigências de campos extras para um alvo,
// independentemente do status atual. É a regra usada pelo modo privilegiado:
// "awaiting_activation" e "activated" exigem data de instalação, "lost" exige
// motivo. Os invariantes dos estados pulados não são revalidados aqui.
func RequirementsFor(target Status) (needsInstallationDate, needsLossReason bool) {
	switch target {
	case StatusAwaitingActivation, StatusActivated:
		return true, false
	case StatusLost:
		return false, true
	}
	return false, false
}
