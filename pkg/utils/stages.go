package utils

import (
	yip "github.com/mudler/yip/pkg/schema"
)

func GetFilesStage(stageName string, files []yip.File) yip.Stage {
	return yip.Stage{
		Name:  stageName,
		Files: files,
	}
}
