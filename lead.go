package main

import (
	"fmt"

	"github.com/clarketm/json"
	"github.com/nleeper/goment"
)

const (
	KeyFullName  = "full_name"
	KeyPhone     = "phone"
	KeyEmail     = "email"
	KeyDirection = "direction"
)

// Supplementary keys, named the way the lead form sends them.
const (
	KeyStudentName      = "ФИО студента"
	KeyParentName       = "ФИО родителя"
	KeyHasPassport      = "Наличие паспорта"
	KeyPassportExpiry   = "Срок действия паспорта"
	KeyTravelMonth      = "Месяц поездки"
	KeyDepartureCity    = "Город вылета"
	KeyArrivalCity      = "Город прибытия"
	KeyTravelDate       = "Дата поездки"
	KeyLuggage          = "Багаж"
	KeyCurrentEducation = "Текущее образование"
	KeyCurrentUniv      = "Текущий университет"
	KeyCurrentCountry   = "Текущая страна"
)

var dateKeys = []string{KeyTravelDate, KeyPassportExpiry}

// Lead is a flat record: four core fields plus free-form string attributes.
// A key missing from Extra is not sent at all; a key mapped to "" is sent empty.
type Lead struct {
	FullName  string
	Phone     string
	Email     string
	Direction string
	Extra     map[string]string
}

func isCoreKey(key string) bool {
	switch key {
	case KeyFullName, KeyPhone, KeyEmail, KeyDirection:
		return true
	}
	return false
}

// Fields returns the lead as the flat mapping that goes on the wire.
func (l Lead) Fields() map[string]string {
	fields := make(map[string]string, len(l.Extra)+4)
	for key, value := range l.Extra {
		if isCoreKey(key) {
			continue
		}
		fields[key] = value
	}
	fields[KeyFullName] = l.FullName
	fields[KeyPhone] = l.Phone
	fields[KeyEmail] = l.Email
	fields[KeyDirection] = l.Direction
	return fields
}

func (l Lead) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Fields())
}

func (l *Lead) UnmarshalJSON(data []byte) error {
	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*l = Lead{}
	for key, value := range fields {
		switch key {
		case KeyFullName:
			l.FullName = value
		case KeyPhone:
			l.Phone = value
		case KeyEmail:
			l.Email = value
		case KeyDirection:
			l.Direction = value
		default:
			if l.Extra == nil {
				l.Extra = make(map[string]string)
			}
			l.Extra[key] = value
		}
	}
	return nil
}

func (l Lead) Validate() error {
	if l.FullName == "" {
		return &SerializationError{Err: fmt.Errorf("%s is required", KeyFullName)}
	}
	if l.Phone == "" {
		return &SerializationError{Err: fmt.Errorf("%s is required", KeyPhone)}
	}
	return nil
}

// prepareLead returns a copy of lead with date attributes normalised.
// The caller's Extra map is never modified.
func prepareLead(lead Lead) Lead {
	prepared := lead
	if lead.Extra == nil {
		return prepared
	}
	prepared.Extra = make(map[string]string, len(lead.Extra))
	for key, value := range lead.Extra {
		prepared.Extra[key] = value
	}
	for _, key := range dateKeys {
		if value, ok := prepared.Extra[key]; ok && value != "" {
			prepared.Extra[key] = formatDate(value)
		}
	}
	return prepared
}

// formatDate brings ISO and DD.MM.YYYY dates to YYYY-MM-DD.
// goment parses leniently, so a parse only counts when it formats back to the
// exact input. Anything else is returned as is and left to the receiving side.
func formatDate(date string) string {
	if t, err := goment.New(date); err == nil && t != nil && t.Format("YYYY-MM-DD") == date {
		return date
	}
	if t, err := goment.New(date, "DD.MM.YYYY"); err == nil && t != nil && t.Format("DD.MM.YYYY") == date {
		return t.Format("YYYY-MM-DD")
	}
	return date
}

func translateDirection(direction string) string {
	dict := map[string]string{
		"admission":   "Поступление",
		"translation": "Переводы",
		"umrah":       "Умра/Хадж",
		"visa":        "Виза",
		"tickets":     "Билеты",
		"tours":       "Туры в Туркменистан",
		"work_visa":   "Рабочие визы",
	}

	return applyTranslation(dict, direction)
}

func applyTranslation(dictMap map[string]string, valueToTranslate string) string {
	result := valueToTranslate
	value, exists := dictMap[valueToTranslate]
	if exists {
		result = value
	}

	return result
}
