package main

import (
	"dreamtree/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.AtprotoOAuthStateModel{},
		model.AtprotoSessionModel{},
		model.SkillModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
