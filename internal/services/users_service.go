package services

import (
	"strconv"
	"strings"

	"evtaxi-admin/internal/domain"
	"evtaxi-admin/internal/repositories"
)

type UsersService struct {
	UsersRepo repositories.UsersRepository
}

// ListAccounts returns the synthetic rider+driver union. accountType
// narrows to one side ("rider"/"driver"); empty returns both, riders
// first. search applies an in-process substring filter over name, email,
// phone and id — the two sub-lists aggregate over different tables, so
// the filter runs after the fetch.
func (s UsersService) ListAccounts(accountType, search string) ([]repositories.AccountRow, error) {
	out := []repositories.AccountRow{}

	if accountType == "" || accountType == "rider" {
		riders, err := s.UsersRepo.ListRiders()
		if err != nil {
			return nil, err
		}
		out = append(out, riders...)
	}
	if accountType == "" || accountType == "driver" {
		owners, err := s.UsersRepo.ListOwners()
		if err != nil {
			return nil, err
		}
		out = append(out, owners...)
	}

	return filterAccounts(out, search), nil
}

// GetAccount resolves one rider or driver by type.
func (s UsersService) GetAccount(accountType string, id int64) (repositories.AccountRow, error) {
	switch accountType {
	case "rider":
		return s.UsersRepo.GetRider(id)
	case "driver":
		return s.UsersRepo.GetOwner(id)
	default:
		return repositories.AccountRow{}, domain.ValidationError{Field: "type", Msg: "invalid user type: " + accountType}
	}
}

func filterAccounts(rows []repositories.AccountRow, search string) []repositories.AccountRow {
	needle := strings.TrimSpace(search)
	if needle == "" {
		return rows
	}

	out := []repositories.AccountRow{}
	for _, row := range rows {
		if accountMatches(row, needle) {
			out = append(out, row)
		}
	}
	return out
}

func accountMatches(row repositories.AccountRow, needle string) bool {
	if strings.Contains(row.Name, needle) {
		return true
	}
	if row.Email != nil && strings.Contains(*row.Email, needle) {
		return true
	}
	if row.Phone != nil && strings.Contains(*row.Phone, needle) {
		return true
	}
	return strings.Contains(strconv.FormatInt(row.ID, 10), needle)
}
