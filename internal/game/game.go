package game

import (
	"fmt"
	"time"

	"drive3d/internal/components"
	"drive3d/internal/config"
	"drive3d/internal/engine"
	"drive3d/internal/input"
	"drive3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Game wires the simulation core to the raylib host: it owns the frame
// clock, feeds key state into input.State, ticks the scene and renders the
// result. All of that happens on one thread, once per frame.
type Game struct {
	Scene  *engine.Scene
	World  *physics.World
	Input  *input.State
	Car    *components.CarController
	Camera *components.ChaseCamera

	carObj *engine.GameObject
	clock  *Clock
	log    *zap.Logger
	hud    hud

	window   config.WindowConfig
	carModel rl.Model

	lastHitLog time.Time
}

func New(logger *zap.Logger) (*Game, error) {
	window, err := config.Window()
	if err != nil {
		return nil, err
	}
	carCfg, err := config.Car()
	if err != nil {
		return nil, err
	}
	camCfg, err := config.Camera()
	if err != nil {
		return nil, err
	}
	obstacles, err := config.Obstacles()
	if err != nil {
		return nil, err
	}

	g := &Game{
		Scene:  engine.NewScene("Main"),
		World:  physics.NewWorld(),
		Input:  input.NewState(),
		clock:  NewClock(),
		log:    logger,
		window: window,
	}

	for _, o := range obstacles {
		if err := g.addObstacle(o); err != nil {
			return nil, err
		}
	}
	g.createCar(carCfg, camCfg)

	logger.Info("scene ready",
		zap.Int("obstacles", len(g.World.Obstacles())),
		zap.Float32("maxSpeed", g.Car.MaxSpeed))

	return g, nil
}

func (g *Game) addObstacle(o config.ObstacleConfig) error {
	if o.Size.X <= 0 || o.Size.Y <= 0 || o.Size.Z <= 0 {
		return fmt.Errorf("obstacle %q: size must be positive, got %+v", o.Name, o.Size)
	}

	g.World.Add(physics.Obstacle{
		Name:   o.Name,
		Center: o.Center.Vector3(),
		Size:   o.Size.Vector3(),
	})

	obj := engine.NewGameObject(o.Name)
	obj.Tags = []string{"obstacle"}
	obj.Transform.Position = o.Center.Vector3()
	obj.AddComponent(components.NewBoxCollider(o.Size.Vector3()))
	g.Scene.AddGameObject(obj)
	return nil
}

func (g *Game) createCar(carCfg config.CarConfig, camCfg config.CameraConfig) {
	g.carObj = engine.NewGameObject("Car")
	g.carObj.Tags = []string{"player"}

	g.Car = components.NewCarController(g.Input, g.World)
	g.Car.MaxSpeed = carCfg.MaxSpeed
	g.Car.Acceleration = carCfg.Acceleration
	g.Car.Brake = carCfg.Brake
	g.Car.Friction = carCfg.Friction
	g.Car.TurnSpeed = carCfg.TurnSpeed
	g.Car.Size = carCfg.Size.Vector3()

	g.Camera = components.NewChaseCamera(g.Car)
	g.Camera.FollowDistance = camCfg.FollowDistance
	g.Camera.Height = camCfg.Height
	g.Camera.LookHeight = camCfg.LookHeight
	g.Camera.Smoother = components.ExponentialSmoother{Speed: camCfg.SmoothSpeed}

	// Controller before camera: the camera must see this frame's position.
	g.carObj.AddComponent(components.NewBoxCollider(g.Car.Size))
	g.carObj.AddComponent(g.Car)
	g.carObj.AddComponent(g.Camera)
	g.Scene.AddGameObject(g.carObj)

	g.Car.Hit.AddListener(g.onWallHit)
}

// onWallHit logs rejected moves, at most once a second so leaning on a wall
// does not flood the log.
func (g *Game) onWallHit(o physics.Obstacle) {
	if time.Since(g.lastHitLog) < time.Second {
		return
	}
	g.lastHitLog = time.Now()
	g.log.Info("car hit obstacle",
		zap.String("obstacle", o.Name),
		zap.Float32("x", o.Center.X),
		zap.Float32("z", o.Center.Z))
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(g.window.Width, g.window.Height, g.window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.window.TargetFPS)

	g.carModel = rl.LoadModelFromMesh(rl.GenMeshCube(g.Car.Size.X, g.Car.Size.Y, g.Car.Size.Z))
	defer rl.UnloadModel(g.carModel)

	g.Scene.Start()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}

	g.log.Info("shutting down")
}

// Update runs one simulation frame: clock, input snapshot, then the scene
// (car controller first, chase camera after it).
func (g *Game) Update() {
	deltaTime := g.clock.Tick()
	g.pollInput()
	g.Scene.Update(deltaTime)
}

func (g *Game) pollInput() {
	g.Input.Set(input.Throttle, rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp))
	g.Input.Set(input.Reverse, rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown))
	g.Input.Set(input.SteerLeft, rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft))
	g.Input.Set(input.SteerRight, rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight))
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(13, 13, 18, 255))

	rl.BeginMode3D(g.sceneCamera())

	rl.DrawPlane(rl.Vector3Zero(), rl.Vector2{X: 60, Y: 60}, rl.LightGray)

	for _, obj := range g.Scene.FindByTag("obstacle") {
		collider := engine.GetComponent[*components.BoxCollider](obj)
		if collider == nil {
			continue
		}
		rl.DrawCubeV(collider.Center(), collider.Size, rl.Brown)
		rl.DrawCubeWiresV(collider.Center(), collider.Size, rl.DarkBrown)
	}

	g.drawCar()

	if g.hud.showColliders {
		g.drawColliders()
	}

	rl.EndMode3D()

	g.drawHUD()

	rl.EndDrawing()
}

// sceneCamera finds the car's ViewProvider component. Whatever component
// claims to provide the view wins; the chase camera is the only one today.
func (g *Game) sceneCamera() rl.Camera3D {
	for _, c := range g.carObj.Components() {
		if vp, ok := c.(engine.ViewProvider); ok {
			return vp.Camera()
		}
	}
	return rl.Camera3D{
		Position: rl.Vector3{Y: 3, Z: -8},
		Up:       rl.Vector3{Y: 1},
		Fovy:     45,
	}
}

func (g *Game) drawCar() {
	pos := g.carObj.Transform.Position
	pos.Y += g.Car.Size.Y / 2 // model sits on the floor, collision center stays at y=0

	rl.DrawModelEx(g.carModel, pos,
		rl.Vector3{X: 0, Y: 1, Z: 0}, g.Car.Yaw,
		rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Red)
}

// drawColliders renders the collision boxes the simulation actually tests,
// not the visual meshes.
func (g *Game) drawColliders() {
	carBox := physics.NewAABBFromCenter(g.carObj.Transform.Position, g.Car.Size)
	rl.DrawBoundingBox(rl.BoundingBox{Min: carBox.Min, Max: carBox.Max}, rl.Green)

	for _, o := range g.World.Obstacles() {
		box := o.AABB()
		rl.DrawBoundingBox(rl.BoundingBox{Min: box.Min, Max: box.Max}, rl.Yellow)
	}
}
