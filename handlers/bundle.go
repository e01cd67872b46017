package handlers

import (
	customerRepo "coolq/database/repository/customer"
	technicianRepo "coolq/database/repository/technician"
)

// HandlerBundle aggregates the handlers and the repositories the auth
// middleware needs, so route registration takes a single argument.
type HandlerBundle struct {
	CustomerRepo   customerRepo.CustomerRepository
	TechnicianRepo technicianRepo.TechnicianRepository

	Customer   *CustomerHandler
	Technician *TechnicianHandler
	Catalog    *CatalogHandler
	Booking    *BookingHandler
	Review     *ReviewHandler
	Admin      *AdminHandler
	Storage    *StorageHandler
}
