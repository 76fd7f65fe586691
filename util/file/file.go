package file

import (
	"evogamesim/interfaces"
	"fmt"
	"os"
)

func SeedPath(config interfaces.IConfig) string {
	return fmt.Sprintf("%v/%v", config.OutPath(), config.Seed())
}

// outputFile replaces outPath/seed/name with an empty file
func outputFile(config interfaces.IConfig, name string) (*os.File, error) {
	outFile := fmt.Sprintf("%v/%v", SeedPath(config), name)
	if FileExists(outFile) {
		err := os.Remove(outFile)
		if err != nil {
			return nil, err
		}
	} else {
		if err := EnsureOutPath(SeedPath(config)); err != nil {
			return nil, err
		}
	}
	outputFile, err := os.Create(outFile)
	if err != nil {
		return nil, err
	}

	return outputFile, nil
}

func ResultsFile(config interfaces.IConfig) (*os.File, error) {
	return outputFile(config, "results.json")
}

func ResultsCsvFile(config interfaces.IConfig) (*os.File, error) {
	return outputFile(config, "results.csv")
}

func TrajectoryFile(config interfaces.IConfig) (*os.File, error) {
	return outputFile(config, "trajectory.json")
}

func MetricsFile(config interfaces.IConfig) (*os.File, error) {
	return outputFile(config, "metrics.json")
}

func LoggerFile(config interfaces.IConfig) (*os.File, error) {
	return outputFile(config, "log.txt")
}

func AuditLoggerFile(config interfaces.IConfig) (*os.File, error) {
	return outputFile(config, "audit.csv")
}

func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

func EnsureOutPath(outPath string) error {
	_, err := os.Stat(outPath)
	if os.IsNotExist(err) {
		return os.MkdirAll(outPath, os.ModePerm)
	}
	return err
}
