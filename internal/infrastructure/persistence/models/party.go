package models

import (
	"github.com/ledgerhub/backend/internal/domain/party"
)

// PersonModel persists both party kinds in a single table discriminated
// by the Kind column. Kind-specific columns are nullable and only filled
// for the matching kind.
type PersonModel struct {
	TenantAggregateModel
	Name          string           `gorm:"type:varchar(200);not null"`
	Document      string           `gorm:"type:varchar(50);not null;index"`
	Kind          party.PersonType `gorm:"type:varchar(20);not null;index"`
	Email         string           `gorm:"type:varchar(200);not null"`
	Phone         string           `gorm:"type:varchar(50);not null"`
	Active        bool             `gorm:"not null;default:true;index"`
	MaritalStatus *string          `gorm:"type:varchar(20)"`
	LegalName     *string          `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (PersonModel) TableName() string {
	return "persons"
}

func (m *PersonModel) toDomainPerson() party.Person {
	return party.Person{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		Name:                m.Name,
		Document:            m.Document,
		Type:                m.Kind,
		Email:               m.Email,
		Phone:               m.Phone,
		Active:              m.Active,
	}
}

func (m *PersonModel) fromDomainPerson(p *party.Person) {
	m.FromDomainTenantAggregateRoot(p.TenantAggregateRoot)
	m.Name = p.Name
	m.Document = p.Document
	m.Kind = p.Type
	m.Email = p.Email
	m.Phone = p.Phone
	m.Active = p.Active
}

// ToRecord converts the model to the kind-agnostic read view
func (m *PersonModel) ToRecord() *party.PersonRecord {
	record := &party.PersonRecord{Person: m.toDomainPerson()}
	if m.MaritalStatus != nil {
		status := party.MaritalStatus(*m.MaritalStatus)
		record.MaritalStatus = &status
	}
	if m.LegalName != nil {
		legalName := *m.LegalName
		record.LegalName = &legalName
	}
	return record
}

// ToIndividual converts the model to a domain IndividualPerson.
// Returns nil when the row holds a different kind.
func (m *PersonModel) ToIndividual() *party.IndividualPerson {
	if m.Kind != party.PersonTypeIndividual {
		return nil
	}
	person := &party.IndividualPerson{Person: m.toDomainPerson()}
	if m.MaritalStatus != nil {
		person.MaritalStatus = party.MaritalStatus(*m.MaritalStatus)
	}
	return person
}

// ToLegal converts the model to a domain LegalPerson.
// Returns nil when the row holds a different kind.
func (m *PersonModel) ToLegal() *party.LegalPerson {
	if m.Kind != party.PersonTypeCompany {
		return nil
	}
	person := &party.LegalPerson{Person: m.toDomainPerson()}
	if m.LegalName != nil {
		person.LegalName = *m.LegalName
	}
	return person
}

// PersonModelFromIndividual creates a persistence model from a domain IndividualPerson
func PersonModelFromIndividual(p *party.IndividualPerson) *PersonModel {
	m := &PersonModel{}
	m.fromDomainPerson(&p.Person)
	status := p.MaritalStatus.String()
	m.MaritalStatus = &status
	return m
}

// PersonModelFromLegal creates a persistence model from a domain LegalPerson
func PersonModelFromLegal(p *party.LegalPerson) *PersonModel {
	m := &PersonModel{}
	m.fromDomainPerson(&p.Person)
	legalName := p.LegalName
	m.LegalName = &legalName
	return m
}
