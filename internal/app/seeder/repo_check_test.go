package seeder_test

import (
	"github.com/heartmarshall/studynotes-backend/internal/adapter/postgres/subject"
	"github.com/heartmarshall/studynotes-backend/internal/adapter/postgres/template"
	"github.com/heartmarshall/studynotes-backend/internal/app/seeder"
)

// Compile-time checks: the postgres repos satisfy the seeder contracts.
var (
	_ seeder.SubjectUpserter  = (*subject.Repo)(nil)
	_ seeder.TemplateUpserter = (*template.Repo)(nil)
)
