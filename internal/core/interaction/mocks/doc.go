// Package mocks holds testify mocks of the interaction contracts.
package mocks

//go:generate mockery --name Action --dir .. --output . --outpkg mocks --structname MockAction --with-expecter
//go:generate mockery --name Interactor --dir .. --output . --outpkg mocks --structname MockInteractor --with-expecter
