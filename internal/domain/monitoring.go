package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const TaskStatusPending = "Pendente"

type Review struct {
	ID             int64           `json:"id" mapstructure:"id"`
	GroupID        int64           `json:"groupId" mapstructure:"group_id"`
	NextReviewDate *time.Time      `json:"nextReviewDate" mapstructure:"next_review_date"`
	Status         string          `json:"status" mapstructure:"status"`
	GroupName      string          `json:"groupName" mapstructure:"group_name"`
	CurrentVolume  decimal.Decimal `json:"currentVolume" mapstructure:"current_volume"`
}

// ReviewStatus é o resumo de revisão exibido no detalhe do grupo
type ReviewStatus struct {
	Status string `json:"status" mapstructure:"status"`
}

type Visit struct {
	ID            int64      `json:"id" mapstructure:"id"`
	GroupID       int64      `json:"groupId" mapstructure:"group_id"`
	NextVisitDate *time.Time `json:"nextVisitDate" mapstructure:"next_visit_date"`
	GroupName     string     `json:"groupName" mapstructure:"group_name"`
}

type Rule struct {
	ID            int64      `json:"id" mapstructure:"id"`
	Name          string     `json:"name" mapstructure:"name"`
	Description   *string    `json:"description" mapstructure:"description"`
	Priority      int        `json:"priority" mapstructure:"priority"`
	NextExecution *time.Time `json:"nextExecution" mapstructure:"next_execution"`
}

type Task struct {
	ID          int64     `json:"id" mapstructure:"id"`
	GroupID     int64     `json:"groupId" mapstructure:"group_id"`
	Date        time.Time `json:"date" mapstructure:"date"`
	Title       string    `json:"title" mapstructure:"title"`
	Priority    *string   `json:"priority" mapstructure:"priority"`
	Type        *string   `json:"type" mapstructure:"type"`
	Responsible *string   `json:"responsible" mapstructure:"responsible"`
	Status      string    `json:"status" mapstructure:"status"`
}

type TaskRequest struct {
	Date        string  `json:"date"`
	GroupID     int64   `json:"groupId"`
	Priority    *string `json:"priority"`
	Type        *string `json:"type"`
	Responsible *string `json:"responsible"`
	Title       string  `json:"title"`
}

type Insurance struct {
	ID             int64               `json:"id" mapstructure:"id"`
	GroupID        int64               `json:"groupId" mapstructure:"group_id"`
	GroupName      string              `json:"groupName" mapstructure:"group_name"`
	Insurer        *string             `json:"insurer" mapstructure:"insurer"`
	PolicyNumber   *string             `json:"policyNumber" mapstructure:"policy_number"`
	Coverage       decimal.NullDecimal `json:"coverage" mapstructure:"coverage"`
	ExpirationDate *time.Time          `json:"expirationDate" mapstructure:"expiration_date"`
}

type Appraisal struct {
	ID                  int64               `json:"id" mapstructure:"id"`
	GroupID             int64               `json:"groupId" mapstructure:"group_id"`
	GroupName           string              `json:"groupName" mapstructure:"group_name"`
	Date                *time.Time          `json:"date" mapstructure:"date"`
	PropertyDescription *string             `json:"propertyDescription" mapstructure:"property_description"`
	Appraiser           *string             `json:"appraiser" mapstructure:"appraiser"`
	Value               decimal.NullDecimal `json:"value" mapstructure:"value"`
}

type PropertyGuarantee struct {
	ID           int64               `json:"id" mapstructure:"id"`
	GroupID      int64               `json:"groupId" mapstructure:"group_id"`
	Description  *string             `json:"description" mapstructure:"description"`
	Registration *string             `json:"registration" mapstructure:"registration"`
	Location     *string             `json:"location" mapstructure:"location"`
	Value        decimal.NullDecimal `json:"value" mapstructure:"value"`
}
