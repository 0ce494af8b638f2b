package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/akangshyya/image-descriptor/internal/models"
)

// Dev utility: posts an analysis result to a running narrationd and starts
// narration, mirroring what the mobile client does after an image upload.

func main() {
	server := flag.String("server", "http://localhost:8000", "narrationd base URL")
	file := flag.String("file", "", "path to an analysis result JSON file (built-in sample when empty)")
	start := flag.Bool("start", true, "start narration after posting")
	flag.Parse()

	var payload []byte
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("failed to read %s: %v", *file, err)
		}
		payload = data
	} else {
		payload = sampleAnalysis()
	}

	body := post(*server+"/analysis", payload)
	fmt.Printf("analysis: %s\n", body)

	if *start {
		body = post(*server+"/narration/start", nil)
		fmt.Printf("start: %s\n", body)
	}
}

func post(url string, payload []byte) string {
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("POST %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		log.Fatalf("POST %s: %s - %s", url, resp.Status, string(body))
	}
	return string(body)
}

func sampleAnalysis() []byte {
	result := models.AnalysisResult{
		ID: "sample-1",
		Captions: map[string]models.Caption{
			"english": {Text: "a person walking a dog on a busy street"},
			"hindi":   {Text: "एक व्यक्ति व्यस्त सड़क पर कुत्ते को टहला रहा है"},
		},
		HazardReport: "Detected 2 objects:\n1. Knife - 0.91 (close, left)\n2. Scissors - 0.77 (far, right)",
	}

	data, err := json.Marshal(result)
	if err != nil {
		log.Fatalf("failed to marshal sample: %v", err)
	}
	return data
}
