package main

import (
	"github.com/Eric-Devv/NutriScopeAI/config"
	"github.com/Eric-Devv/NutriScopeAI/routes"
	"github.com/Eric-Devv/NutriScopeAI/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
