package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"
)

func main() {
	fmt.Println("Starting FBIV VPN...")

	clientName := "fbivctl"
	if runtime.GOOS == "windows" {
		clientName = "fbivctl.exe"
	}
	// start the server in the background
	server := exec.Command("go", "run", "./cmd/server/main.go")
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr

	if err := server.Start(); err != nil {
		fmt.Printf("Failed to start the server: %v\n", err)
		return
	}

	time.Sleep(3 * time.Second)
	// build the client
	if _, err := os.Stat(clientName); os.IsNotExist(err) {
		fmt.Println("Building the client...")
		build := exec.Command("go", "build", "-o", clientName, "./cmd/fbivctl/main.go")
		build.Stdout = os.Stdout
		build.Stderr = os.Stderr
		build.Run()
		// outside windows set the exec bit
		if runtime.GOOS != "windows" {
			os.Chmod(clientName, 0755)
		}
	}

	fmt.Println("Server is up")
	// tell the user how to run the client
	if runtime.GOOS == "windows" {
		fmt.Println("Keep this terminal open. Open a new one and run: .\\fbivctl.exe")
	} else {
		fmt.Println("Keep this terminal open. Open a new one and run: ./fbivctl")
	}

	server.Wait()
}
