package models

import "time"

// Client is a customer of the engineering office. Only Name is required.
type Client struct {
	ID                 string
	Name               string
	Address            *string
	Neighborhood       *string
	City               *string
	Whatsapp           *string
	Email              *string
	Responsible        *string
	RegistrationNumber *string
	MinutesNumber      *string
	RegistrationDate   *time.Time
	Deadline           *time.Time
	UserCreated        string
}

// Contract belongs to a client and groups service items.
type Contract struct {
	ID                  string
	ClientID            string
	ContractNumber      *string
	ProcessNumber       *string
	Description         string
	ContractDescription *string
	StartDate           *time.Time
	EndDate             *time.Time
	TotalValue          float64
}

// DefaultContractDescription is used when a contract is saved without one.
const DefaultContractDescription = "Novo Contrato"
