// Package sitecontent manages the editable content behind the agency
// marketing site: named page sections with a draft/published lifecycle
// and uploaded media assets stored in a blob backend.
//
// The package is storage-agnostic. Persistence goes through the
// Repository interface (in-memory and Postgres implementations under
// repo/) and binary assets go through the BlobStore interface
// (in-memory, filesystem and S3 implementations under storage/).
// Construct a Service with New and the functional options:
//
//	svc, err := sitecontent.New(
//	    sitecontent.WithRepository(memory.New()),
//	    sitecontent.WithBlobStore("memory", memorystorage.New()),
//	)
package sitecontent
