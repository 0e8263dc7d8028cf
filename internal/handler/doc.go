// Package handler provides HTTP request handlers for the phonebook API.
//
// # Routes
//
//	GET    /api/persons        list every person
//	POST   /api/persons        add a person
//	GET    /api/persons/{id}   get one person
//	PUT    /api/persons/{id}   change a person's number
//	DELETE /api/persons/{id}   remove a person
//	GET    /info               phonebook size as HTML
//	GET    /health             backend reachability
//
// Anything else is handled by FallbackHandler, which serves the frontend
// build when a file exists and otherwise answers 404 {"error":"unknown endpoint"}.
//
// # Errors
//
// Every service error goes through MapServiceError. Errors are written as
// {"error": "..."}, except not-found which is a bare 404. Unrecognized errors
// become 500 and are logged with the request id.
//
// # Example Usage
//
//	mux := http.NewServeMux()
//	handler.NewPersonHandler(phonebookService).RegisterRoutes(mux)
//	mux.Handle("/", handler.NewFallbackHandler("build"))
package handler
