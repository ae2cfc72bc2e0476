package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Car")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj {
		t.Error("GameObject not added to scene")
	}

	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Car")
	obj2 := NewGameObject("Wall")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)

	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject after removal, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj2 {
		t.Error("Wrong GameObject removed")
	}

	if obj1.Scene != nil {
		t.Error("Removed GameObject should have nil Scene")
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Car")

	scene.AddGameObject(obj)

	found := scene.FindByName("Car")
	if found != obj {
		t.Error("FindByName failed")
	}

	notFound := scene.FindByName("DoesNotExist")
	if notFound != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Wall1")
	obj2 := NewGameObject("Wall2")
	obj3 := NewGameObject("Car")

	obj1.Tags = []string{"obstacle"}
	obj2.Tags = []string{"obstacle"}
	obj3.Tags = []string{"player"}

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)
	scene.AddGameObject(obj3)

	obstacles := scene.FindByTag("obstacle")
	if len(obstacles) != 2 {
		t.Errorf("Expected 2 obstacles, got %d", len(obstacles))
	}

	players := scene.FindByTag("player")
	if len(players) != 1 {
		t.Errorf("Expected 1 player, got %d", len(players))
	}

	notFound := scene.FindByTag("nonexistent")
	if len(notFound) != 0 {
		t.Error("FindByTag should return empty slice for non-existent tag")
	}
}

func TestSceneUpdatePropagates(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Car")
	var order []string
	obj.AddComponent(&countingComponent{order: &order, name: "controller"})
	scene.AddGameObject(obj)

	scene.Start()
	scene.Update(0.016)

	if len(order) != 1 {
		t.Errorf("Expected 1 component update, got %d", len(order))
	}
}
