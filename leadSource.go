package main

import (
	"fmt"
	"io"
	"os"

	"github.com/clarketm/json"
)

// exampleLead is the lead the web form posts for a visa request.
func exampleLead() Lead {
	return Lead{
		FullName:  "Азат Азатов",
		Phone:     "+99365123456",
		Email:     "azat@mail.ru",
		Direction: "visa",
		Extra: map[string]string{
			KeyStudentName:   "Азат Азатов",
			KeyHasPassport:   "Да",
			KeyTravelMonth:   "Октябрь",
			KeyDepartureCity: "Ашхабад",
			// unknown date: "" or leave the key out
			KeyTravelDate: "",
		},
	}
}

// readLead loads the lead to send. An empty path means the example lead,
// "-" means stdin.
func readLead(path string, stdin io.Reader) (Lead, error) {
	switch path {
	case "":
		return exampleLead(), nil
	case "-":
		return decodeLead(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return Lead{}, err
	}
	defer f.Close()
	return decodeLead(f)
}

func decodeLead(r io.Reader) (Lead, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Lead{}, err
	}
	var lead Lead
	if err := json.Unmarshal(data, &lead); err != nil {
		return Lead{}, fmt.Errorf("lead must be a JSON object with string values: %w", err)
	}
	return lead, nil
}
