package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"hybrid-render/core"
	"hybrid-render/math"
	"hybrid-render/renderer"
	"hybrid-render/scene"
)

func main() {
	width := flag.Int("width", 800, "window width in pixels")
	height := flag.Int("height", 450, "window height in pixels")
	modelPath := flag.String("model", "", "optional glTF model (.glb/.gltf) to display")
	targetFPS := flag.Int("fps", 60, "frame rate cap, 0 to uncap")
	flag.Parse()

	if err := run(*width, *height, *modelPath, *targetFPS); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(width, height int, modelPath string, targetFPS int) error {
	config := core.DefaultWindowConfig()
	config.Width = width
	config.Height = height
	config.Title = "hybrid render (raymarch + raster)"

	window, err := core.NewWindow(config)
	if err != nil {
		return err
	}
	defer window.Destroy()

	hr, err := renderer.New(window)
	if err != nil {
		return err
	}
	defer hr.Destroy()

	cam := scene.NewCamera(
		math.NewVec3(0.5, 1.0, 1.5),
		math.NewVec3(0, 0.5, 0),
		45,
	)
	control := newOrbitControl(window, cam)

	instances, err := buildScene(hr, modelPath)
	if err != nil {
		return err
	}

	limiter := core.NewFrameLimiter(targetFPS)
	counter := core.NewFPSCounter()
	f12Down := false
	titleFPS := -1

	for !window.ShouldClose() {
		dt := limiter.Wait()
		window.PollEvents()

		if window.IsKeyPressed(core.KeyEscape) {
			break
		}
		if window.IsKeyPressed(core.KeyF12) {
			if !f12Down {
				name := fmt.Sprintf("hybrid_%s.webp", time.Now().Format("150405"))
				if err := hr.Screenshot(name); err != nil {
					fmt.Printf("Screenshot failed: %v\n", err)
				}
			}
			f12Down = true
		} else {
			f12Down = false
		}

		control.update(dt)

		fps := counter.Tick()
		if fps != titleFPS {
			window.SetTitle(fmt.Sprintf("%s (%d FPS)", config.Title, fps))
			titleFPS = fps
		}

		hr.Render(cam, instances)
		hr.Present(fps)
	}
	return nil
}

// buildScene assembles the demo content: two cubes with wireframe
// outlines straddling the raymarched shapes, a ground grid, and an
// optional glTF model at the origin.
func buildScene(hr *renderer.HybridRenderer, modelPath string) ([]renderer.Instance, error) {
	at := func(x, y, z float32) math.Mat4 {
		return math.Mat4Translation(math.NewVec3(x, y, z))
	}

	instances := []renderer.Instance{
		{Mesh: scene.CreateCube(1, core.ColorPurple), Model: at(0, 0.5, 1)},
		{Mesh: scene.CreateCubeWires(1, core.ColorRed), Model: at(0, 0.5, 1)},
		{Mesh: scene.CreateCube(1, core.ColorYellow), Model: at(0, 0.5, -1)},
		{Mesh: scene.CreateCubeWires(1, core.ColorDarkGreen), Model: at(0, 0.5, -1)},
		{Mesh: scene.CreateGrid(10, 1.0), Model: math.Mat4Identity()},
	}

	if modelPath != "" {
		result, err := scene.LoadGLTF(modelPath)
		if err != nil {
			return nil, err
		}
		for _, tex := range result.Textures {
			hr.UploadTexture(tex)
		}
		for _, mesh := range result.Meshes {
			instances = append(instances, renderer.Instance{
				Mesh:  mesh,
				Model: math.Mat4Identity(),
			})
		}
		fmt.Printf("Model: loaded %d meshes from %s\n", len(result.Meshes), modelPath)
	}

	return instances, nil
}
