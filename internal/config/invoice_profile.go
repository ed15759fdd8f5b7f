package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"hospital_billing/internal/domain/billing"
	"hospital_billing/internal/domain/entities"
)

type invoiceProfileFile struct {
	Hospital entities.HospitalInfo `yaml:"hospital"`
	Lines    []lineTemplateFile    `yaml:"lines"`
}

// Weights stay strings in YAML so "0.4" is read exactly.
type lineTemplateFile struct {
	Code        string `yaml:"code"`
	Description string `yaml:"description"`
	Quantity    int    `yaml:"quantity"`
	Weight      string `yaml:"weight"`
}

// DefaultHospital is the header used when no profile file is configured.
func DefaultHospital() entities.HospitalInfo {
	return entities.HospitalInfo{
		Name:            "A1 Hospital",
		Address:         "123 Main Street, Cityville, State, 123456",
		Contact:         "+1 (555) 123-4567",
		Website:         "www.A1hospital.com",
		AppointmentLine: "+1 (555) 000-1234",
		Center:          "A1 Hospital Main Center",
	}
}

// DefaultInvoiceProfile returns the built-in hospital header and line split.
func DefaultInvoiceProfile() entities.InvoiceProfile {
	return entities.InvoiceProfile{
		Hospital: DefaultHospital(),
		Lines:    billing.DefaultLineTemplates(),
	}
}

// LoadInvoiceProfile reads the YAML profile at path. An empty path yields
// the defaults; fields missing from the file keep their default values.
func LoadInvoiceProfile(path string) (entities.InvoiceProfile, error) {
	profile := DefaultInvoiceProfile()
	if path == "" {
		return profile, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("read invoice profile: %w", err)
	}
	return ParseInvoiceProfile(data)
}

func ParseInvoiceProfile(data []byte) (entities.InvoiceProfile, error) {
	profile := DefaultInvoiceProfile()
	raw := invoiceProfileFile{Hospital: profile.Hospital}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return profile, fmt.Errorf("parse invoice profile: %w", err)
	}
	profile.Hospital = raw.Hospital

	if len(raw.Lines) > 0 {
		lines := make([]entities.LineTemplate, 0, len(raw.Lines))
		for i, l := range raw.Lines {
			w, err := decimal.NewFromString(l.Weight)
			if err != nil {
				return profile, fmt.Errorf("invoice profile line %d weight %q: %w", i+1, l.Weight, err)
			}
			lines = append(lines, entities.LineTemplate{
				Code:        l.Code,
				Description: l.Description,
				Quantity:    l.Quantity,
				Weight:      w,
			})
		}
		if err := billing.ValidateTemplate(lines); err != nil {
			return profile, err
		}
		profile.Lines = lines
	}
	return profile, nil
}
