package version

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
)

type VersionResponse struct {
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
}

var Version = loadVersion()

// loadVersion reads the VCS revision stamped into the binary by the Go toolchain.
func loadVersion() VersionResponse {
	version := VersionResponse{Commit: "unknown"}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}

	version.GoVersion = info.GoVersion
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			version.Commit = setting.Value
		}
	}

	return version
}

func SetupRoutes(app *fiber.App) {
	versionGroup := app.Group("/version")
	versionGroup.Get("/", versionHandler)
}

func versionHandler(c *fiber.Ctx) error {
	return c.JSON(Version)
}
