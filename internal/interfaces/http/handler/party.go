package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ledgerhub/backend/internal/application/bus"
	partyapp "github.com/ledgerhub/backend/internal/application/party"
	"github.com/ledgerhub/backend/internal/domain/party"
	"github.com/ledgerhub/backend/internal/interfaces/http/dto"
)

// PersonHandler exposes the person endpoints
type PersonHandler struct {
	BaseHandler
	bus *bus.Bus
}

// NewPersonHandler creates a person handler
func NewPersonHandler(b *bus.Bus) *PersonHandler {
	return &PersonHandler{bus: b}
}

type createIndividualRequest struct {
	Name          string `json:"name" binding:"required,max=200"`
	Document      string `json:"document" binding:"required,max=50,br_doc"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone" binding:"omitempty,max=30"`
	MaritalStatus string `json:"marital_status" binding:"required,oneof=single married divorced widowed other"`
}

type createLegalRequest struct {
	Name      string `json:"name" binding:"required,max=200"`
	LegalName string `json:"legal_name" binding:"required,max=200"`
	Document  string `json:"document" binding:"required,max=50,br_doc"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"omitempty,max=30"`
}

type updateContactRequest struct {
	Name     string `json:"name" binding:"omitempty,max=200"`
	Document string `json:"document" binding:"omitempty,max=50,br_doc"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" binding:"omitempty,max=30"`
}

type changeMaritalStatusRequest struct {
	MaritalStatus string `json:"marital_status" binding:"required,oneof=single married divorced widowed other"`
}

type changeLegalNameRequest struct {
	LegalName string `json:"legal_name" binding:"required,max=200"`
}

type setActivationRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type listPersonsRequest struct {
	dto.ListRequest
	Type   string `form:"type" binding:"omitempty,oneof=individual company"`
	Active *bool  `form:"active"`
}

// CreateIndividual handles POST /persons/individual
func (h *PersonHandler) CreateIndividual(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	var req createIndividualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := bus.SendCommand[*partyapp.PersonResponse](c.Request.Context(), h.bus, partyapp.CreateIndividualPersonCommand{
		TenantID:      tenantID,
		Name:          req.Name,
		Document:      req.Document,
		Email:         req.Email,
		Phone:         req.Phone,
		MaritalStatus: party.MaritalStatus(req.MaritalStatus),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// CreateLegal handles POST /persons/legal
func (h *PersonHandler) CreateLegal(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	var req createLegalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := bus.SendCommand[*partyapp.PersonResponse](c.Request.Context(), h.bus, partyapp.CreateLegalPersonCommand{
		TenantID:  tenantID,
		Name:      req.Name,
		LegalName: req.LegalName,
		Document:  req.Document,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// UpdateContact handles PUT /persons/:id
func (h *PersonHandler) UpdateContact(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req updateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := bus.SendCommand[*partyapp.PersonResponse](c.Request.Context(), h.bus, partyapp.UpdatePersonContactCommand{
		TenantID: tenantID,
		PersonID: id,
		Name:     req.Name,
		Document: req.Document,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ChangeMaritalStatus handles PATCH /persons/:id/marital-status
func (h *PersonHandler) ChangeMaritalStatus(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req changeMaritalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := bus.SendCommand[*partyapp.PersonResponse](c.Request.Context(), h.bus, partyapp.ChangeMaritalStatusCommand{
		TenantID:      tenantID,
		PersonID:      id,
		MaritalStatus: party.MaritalStatus(req.MaritalStatus),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ChangeLegalName handles PATCH /persons/:id/legal-name
func (h *PersonHandler) ChangeLegalName(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req changeLegalNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := bus.SendCommand[*partyapp.PersonResponse](c.Request.Context(), h.bus, partyapp.ChangeLegalNameCommand{
		TenantID:  tenantID,
		PersonID:  id,
		LegalName: req.LegalName,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetActivation handles PATCH /persons/:id/activation
func (h *PersonHandler) SetActivation(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req setActivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := bus.SendCommand[*partyapp.PersonResponse](c.Request.Context(), h.bus, partyapp.SetPersonActivationCommand{
		TenantID: tenantID,
		PersonID: id,
		Active:   *req.Active,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /persons/:id
func (h *PersonHandler) Delete(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := bus.Send(c.Request.Context(), h.bus, partyapp.DeletePersonCommand{
		TenantID: tenantID,
		PersonID: id,
	}); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Get handles GET /persons/:id
func (h *PersonHandler) Get(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		return
	}

	resp, err := bus.SendQuery[*partyapp.PersonResponse](c.Request.Context(), h.bus, partyapp.GetPersonQuery{
		TenantID: tenantID,
		PersonID: id,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /persons
func (h *PersonHandler) List(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	var req listPersonsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := party.PersonFilter{Filter: toSharedFilter(req.ListRequest), Active: req.Active}
	if req.Type != "" {
		personType := party.PersonType(req.Type)
		filter.Type = &personType
	}

	page, err := bus.SendQuery[*partyapp.PersonListResponse](c.Request.Context(), h.bus, partyapp.ListPersonsQuery{
		TenantID: tenantID,
		Filter:   filter,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}
