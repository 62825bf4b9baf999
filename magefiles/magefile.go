//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/magefile/mage/mg" // mg contains helpful utility functions, like Deps
	"github.com/magefile/mage/sh"
)

var (
	BIN                 string = "ballblaster"
	SIM_BIN             string = "blastsim"
	VERSION             string = getVersion()
	CURRENT_REVISION, _        = sh.Output("git", "rev-parse", "--short", "HEAD")
	BUILD_LDFLAGS       string = "-s -w -X main.revision=" + CURRENT_REVISION
	BUILD_TARGET        string = "."
	SIM_TARGET          string = "./cmd/blastsim"
)

func getVersion() string {
	_, err := exec.LookPath("gobump")
	if err != nil {
		fmt.Println("installing gobump")
		sh.Run("go", "install", "github.com/x-motemen/gobump/cmd/gobump@latest")
	}
	v, _ := sh.Output("gobump", "show", "-r", BUILD_TARGET)
	return v
}

func binName(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}

// Build the game and the headless simulator.
func Build() error {
	mg.Deps(Generate)
	fmt.Println("Building...")
	if err := sh.RunV("go", "build", "-trimpath", "-ldflags="+BUILD_LDFLAGS, "-o", binName(BIN), BUILD_TARGET); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-trimpath", "-o", binName(SIM_BIN), SIM_TARGET)
}

// Install the game into GOBIN.
func Install() error {
	mg.Deps(Build)
	fmt.Println("Installing...")
	return sh.RunV("go", "install", "-ldflags="+BUILD_LDFLAGS, BUILD_TARGET)
}

// Generate regenerates the mocks.
func Generate() error {
	return sh.RunV("go", "generate", "./internal/...")
}

// Test runs the unit tests of every package that does not need a display.
func Test() error {
	mg.Deps(Generate)
	return sh.RunV("go", "test", "./internal/blaster/...", "./internal/config/...", "./internal/assets/...", "./internal/fx/...")
}

// Sim plays a few games headlessly and prints the results.
func Sim() error {
	return sh.RunV("go", "run", SIM_TARGET, "-games", "10")
}

// WriteConfig writes the default config to blaster.toml.
func WriteConfig() error {
	return sh.RunV("go", "run", BUILD_TARGET, "-write-config", "blaster.toml")
}

// Clean up after yourself
func Clean() {
	fmt.Println("Cleaning...")
	os.RemoveAll("goxz")
	os.RemoveAll(binName(BIN))
	os.RemoveAll(binName(SIM_BIN))
}

func ShowVersion() {
	fmt.Println(getVersion())
}

func Cross(goos, arch string) {
	_, err := exec.LookPath("goxz")
	if err != nil {
		fmt.Println("installing goxz")
		sh.Run("go", "install", "github.com/Songmu/goxz/cmd/goxz@latest")
	}
	if goos == "windows" {
		BUILD_LDFLAGS += " -H=windowsgui"
	}
	if goos == "linux" && arch == "arm64" {
		os.Setenv("CC", "zig cc -target aarch64-linux-musl")
		os.Setenv("CGO_LDFLAGS", "-lglfw")
		os.Setenv("EXTRA_LDFLAGS", "-linkmode=external -extldflags=-static")
	}
	sh.Run("goxz", "-n", BIN, "-o", BIN, "-os", goos, "-arch", arch, "-pv=v"+VERSION, "-build-ldflags", BUILD_LDFLAGS, BUILD_TARGET)
}

func Bump() {
	_, err := exec.LookPath("gobump")
	if err != nil {
		fmt.Println("installing gobump")
		sh.Run("go", "install", "github.com/x-motemen/gobump/cmd/gobump@latest")
	}
	sh.Run("gobump", "up", "-w", BUILD_TARGET)
}
