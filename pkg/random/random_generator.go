package random

import (
	"fmt"
	"math/rand"
	"time"
)

var (
	nameLeads = []string{
		"Acme", "Global", "Pioneer", "Summit", "Northern", "Pacific",
		"Sterling", "Vertex", "Crescent", "Harbor", "Atlas", "Meridian",
	}
	nameTrades = []string{
		"Trading", "Holdings", "Logistics", "Consulting", "Industries",
		"Ventures", "Capital", "Services", "Manufacturing", "Analytics",
	}
	nameSuffixes = []string{
		"LLC", "Ltd", "Inc", "GmbH", "Pty Ltd", "S.A.", "B.V.",
	}
	jurisdictionCodes = []string{
		"us_ca", "us_de", "us_ny", "gb", "de", "fr", "nl", "ie", "sg", "au", "in",
	}
	companyTypes = []string{
		"Private Limited Company", "Public Limited Company",
		"Limited Liability Company", "Sole Proprietorship", "Partnership",
	}
	companyStatuses = []string{
		"Active", "Dissolved", "Inactive", "In Liquidation",
	}
)

func GenerateCompanyName() string {
	return fmt.Sprintf("%s %s %s",
		nameLeads[rand.Intn(len(nameLeads))],
		nameTrades[rand.Intn(len(nameTrades))],
		nameSuffixes[rand.Intn(len(nameSuffixes))])
}

func GenerateCompanyNumber() string {
	const charset = "0123456789"
	b := make([]byte, 8)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

func GenerateJurisdictionCode() string {
	return jurisdictionCodes[rand.Intn(len(jurisdictionCodes))]
}

func GenerateCompanyType() string {
	return companyTypes[rand.Intn(len(companyTypes))]
}

func GenerateCompanyStatus() string {
	return companyStatuses[rand.Intn(len(companyStatuses))]
}

// GenerateIncorporationDate returns a date within the last 30 years
// formatted as YYYY-MM-DD.
func GenerateIncorporationDate() string {
	daysBack := rand.Intn(30 * 365)
	return time.Now().UTC().AddDate(0, 0, -daysBack).Format("2006-01-02")
}
