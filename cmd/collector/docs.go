package main

//go:generate swag init -g cmd/collector/main.go -o docs

// @title           0DTE Options Collector API
// @version         0.1.0
// @description     Scheduled options-chain ingestion with snapshot, history, and summary read paths.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
