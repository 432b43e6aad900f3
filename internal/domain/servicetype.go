package domain

import "strings"

// ServiceType represents a kind of service an appointment can be booked for
type ServiceType string

const (
	ServiceInstallation ServiceType = "installation"
	ServiceMaintenance  ServiceType = "maintenance"
	ServiceRepair       ServiceType = "repair"
	ServiceWaterTesting ServiceType = "water-testing"
	ServiceConsultation ServiceType = "consultation"
)

// AllServiceTypes перечень всех поддерживаемых типов услуг
var AllServiceTypes = []ServiceType{
	ServiceInstallation,
	ServiceMaintenance,
	ServiceRepair,
	ServiceWaterTesting,
	ServiceConsultation,
}

// NormalizeServiceType приводит строку к каноническому виду и проверяет,
// что тип входит в перечень поддерживаемых
func NormalizeServiceType(s string) (ServiceType, bool) {
	normalized := ServiceType(strings.ToLower(strings.TrimSpace(s)))
	for _, st := range AllServiceTypes {
		if st == normalized {
			return st, true
		}
	}
	return "", false
}

// IsValidServiceType проверяет тип услуги без нормализации
func IsValidServiceType(s string) bool {
	_, ok := NormalizeServiceType(s)
	return ok
}
