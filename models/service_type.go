// models/service_type.go
package models

// ServiceType is the closed set of consultation categories a client can
// request. Values are stored as-is; labels are what gets shown to humans
// and sent in notifications.
type ServiceType string

const (
	ServiceCourtDisputes        ServiceType = "court_disputes"
	ServiceBusinessRegistration ServiceType = "business_registration"
	ServiceContracts            ServiceType = "contracts"
	ServiceBusinessSupport      ServiceType = "business_support"
	ServiceProjectOrganization  ServiceType = "project_organization"
	ServicePersonalInjury       ServiceType = "personal_injury"
)

// serviceTypeOrder fixes the order choices are listed in.
var serviceTypeOrder = []ServiceType{
	ServiceCourtDisputes,
	ServiceBusinessRegistration,
	ServiceContracts,
	ServiceBusinessSupport,
	ServiceProjectOrganization,
	ServicePersonalInjury,
}

var serviceTypeLabels = map[ServiceType]string{
	ServiceCourtDisputes:        "Суды и Споры",
	ServiceBusinessRegistration: "Регистрация бизнеса",
	ServiceContracts:            "Договоры",
	ServiceBusinessSupport:      "Сопровождение Бизнеса",
	ServiceProjectOrganization:  "Организация проектов и фестивалей",
	ServicePersonalInjury:       "Личная травма",
}

// ServiceTypeOption is one entry of the public service-type enumeration.
type ServiceTypeOption struct {
	Value ServiceType `json:"value"`
	Label string      `json:"label"`
}

// Valid reports whether s is a member of the closed enumeration.
func (s ServiceType) Valid() bool {
	_, ok := serviceTypeLabels[s]
	return ok
}

// Label returns the human-readable display label for s.
func (s ServiceType) Label() string {
	return serviceTypeLabels[s]
}

// ServiceTypeChoices returns the full ordered enumeration.
func ServiceTypeChoices() []ServiceTypeOption {
	choices := make([]ServiceTypeOption, 0, len(serviceTypeOrder))
	for _, s := range serviceTypeOrder {
		choices = append(choices, ServiceTypeOption{Value: s, Label: s.Label()})
	}
	return choices
}
