package repository

import "mortgage-agent/domain"

type ScheduleRepository interface {
	Save(input domain.MortgageInput, result domain.ScheduleResult) error
}
