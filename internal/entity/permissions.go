package entity

// Role é a função do usuário no sistema.
type Role string

const (
	RoleAdminGeral       Role = "administrador_geral"
	RoleSupervisor       Role = "supervisor"
	RoleSupervisorEquipe Role = "supervisor_equipe"
	RoleVendedor         Role = "vendedor"
)

// Capabilities é o conjunto de permissões derivado da função. É valor puro:
// nenhum consumidor deve rederivar lógica de função por conta própria.
type Capabilities struct {
	CanManageStatus   bool
	CanForceAnyStatus bool
	CanMarkLost       bool

	CanManageUsers   bool
	CanManageTeams   bool
	CanViewAllSales  bool
	CanViewTeamSales bool
	CanCreateSale    bool
	CanEditCustomer  bool
}

// CapabilitiesFor mapeia função → permissões. Função desconhecida devolve o
// zero value (tudo negado).
func CapabilitiesFor(role Role) Capabilities {
	switch role {
	case RoleAdminGeral:
		return Capabilities{
			CanManageStatus:   true,
			CanForceAnyStatus: true,
			CanMarkLost:       true,
			CanManageUsers:    true,
			CanManageTeams:    true,
			CanViewAllSales:   true,
			CanCreateSale:     true,
			CanEditCustomer:   true,
		}
	case RoleSupervisor:
		return Capabilities{
			CanManageStatus:   true,
			CanForceAnyStatus: true,
			CanMarkLost:       true,
			CanViewAllSales:   true,
			CanCreateSale:     true,
			CanEditCustomer:   true,
		}
	case RoleSupervisorEquipe:
		return Capabilities{
			CanManageStatus:  true,
			CanMarkLost:      true,
			CanViewTeamSales: true,
			CanCreateSale:    true,
			CanEditCustomer:  true,
		}
	case RoleVendedor:
		return Capabilities{
			CanCreateSale:   true,
			CanEditCustomer: true,
		}
	}
	return Capabilities{}
}
