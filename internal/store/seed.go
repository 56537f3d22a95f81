// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

package store

import "github.com/pkoster/demoboard/internal/models"

// SeedCatalog returns the fixed initial demo catalog inserted when the demo
// collection is empty: nine entries spanning the three levels. Titles are
// the idempotency key for seeding, so they must stay unique.
func SeedCatalog() []models.Demo {
	return []models.Demo{
		{
			Title:        "Basic Sprites",
			Description:  "Load and display static sprites on screen",
			Level:        models.LevelBasic,
			Difficulty:   "Easy",
			Preview:      "Static sprite",
			SceneName:    "BasicSpritesScene",
			Technologies: []string{"Sprites", "Preload", "Create"},
			CodeExample: `// Load sprite
this.load.image('player', 'assets/sprites/player.png');

// Display sprite in create()
this.add.image(400, 300, 'player');`,
		},
		{
			Title:        "Simple Movement",
			Description:  "Basic movement control with the arrow keys",
			Level:        models.LevelBasic,
			Difficulty:   "Easy",
			Preview:      "Arrow-key movement",
			SceneName:    "BasicMovementScene",
			Technologies: []string{"Input", "Update", "Physics"},
			CodeExample: `// In create()
this.cursors = this.input.keyboard.createCursorKeys();

// In update()
if (this.cursors.left.isDown) {
    this.player.x -= 200 * this.game.loop.delta / 1000;
}
if (this.cursors.right.isDown) {
    this.player.x += 200 * this.game.loop.delta / 1000;
}`,
		},
		{
			Title:        "Input Handling",
			Description:  "Capture mouse clicks and keyboard presses",
			Level:        models.LevelBasic,
			Difficulty:   "Easy",
			Preview:      "Click & keyboard",
			SceneName:    "InputHandlingScene",
			Technologies: []string{"Mouse", "Keyboard", "Events"},
			CodeExample: `// Mouse input
this.input.on('pointerdown', (pointer) => {
    console.log('Click at:', pointer.x, pointer.y);
    this.add.circle(pointer.x, pointer.y, 10, 0x00ff00);
});

// Keyboard input
this.spaceKey = this.input.keyboard.addKey('SPACE');
if (this.spaceKey.isDown) {
    // Act on space press
}`,
		},
		{
			Title:        "Animations",
			Description:  "Create and play sprite animations",
			Level:        models.LevelIntermediate,
			Difficulty:   "Medium",
			Preview:      "Animated sprite",
			SceneName:    "AnimationScene",
			Technologies: []string{"Animation", "Spritesheet", "Timeline"},
			CodeExample: `// Load the spritesheet in preload()
this.load.spritesheet('player', 'assets/sprites/player-sheet.png', {
    frameWidth: 32, frameHeight: 32
});

// In create()
this.anims.create({
    key: 'walk',
    frames: this.anims.generateFrameNumbers('player', { start: 0, end: 3 }),
    frameRate: 10,
    repeat: -1
});

// Play the animation
this.player.anims.play('walk');`,
		},
		{
			Title:        "Collision Detection",
			Description:  "Detect collisions between game objects",
			Level:        models.LevelIntermediate,
			Difficulty:   "Medium",
			Preview:      "Colliding objects",
			SceneName:    "CollisionScene",
			Technologies: []string{"Physics", "Overlap", "Collide"},
			CodeExample: `// Enable physics
this.physics.world.setBoundsCollision(true, true, true, false);

// Create physics-enabled objects
this.player = this.physics.add.sprite(400, 500, 'player');
this.enemies = this.physics.add.group();

// Detect overlap
this.physics.add.overlap(this.player, this.enemies, (player, enemy) => {
    enemy.destroy();
    this.score += 10;
});`,
		},
		{
			Title:        "Audio System",
			Description:  "Play sound effects and background music",
			Level:        models.LevelIntermediate,
			Difficulty:   "Medium",
			Preview:      "Sounds & music",
			SceneName:    "AudioScene",
			Technologies: []string{"Audio", "Sound", "Music"},
			CodeExample: `// Load audio in preload()
this.load.audio('shoot', 'assets/sounds/shoot.wav');
this.load.audio('music', 'assets/music/background.mp3');

// In create()
this.shootSound = this.sound.add('shoot');
this.bgMusic = this.sound.add('music', {
    volume: 0.5,
    loop: true
});

// Play
this.shootSound.play();
this.bgMusic.play();`,
		},
		{
			Title:        "Particle System",
			Description:  "Build visual effects with particle emitters",
			Level:        models.LevelAdvanced,
			Difficulty:   "Hard",
			Preview:      "Explosions & effects",
			SceneName:    "ParticleScene",
			Technologies: []string{"Particles", "Emitters", "Effects"},
			CodeExample: `// Create a particle emitter
this.explosion = this.add.particles(0, 0, 'spark', {
    speed: { min: 100, max: 200 },
    scale: { start: 0.5, end: 0 },
    blendMode: 'ADD',
    lifespan: 600
});

// Explode at a given position
this.explosion.explode(20, x, y);`,
		},
		{
			Title:        "Advanced Physics",
			Description:  "Gravity, forces, and complex physics bodies",
			Level:        models.LevelAdvanced,
			Difficulty:   "Hard",
			Preview:      "Realistic physics",
			SceneName:    "AdvancedPhysicsScene",
			Technologies: []string{"Matter.js", "Gravity", "Forces"},
			CodeExample: `// Configure Matter.js
this.matter.world.setBounds(0, 0, 800, 600);
this.matter.world.disableGravity();

// Create custom physics bodies
const body = this.matter.add.rectangle(x, y, w, h, {
    isStatic: false,
    restitution: 0.8
});

// Apply forces
this.matter.applyForce(body, { x: 0, y: -0.01 });`,
		},
		{
			Title:        "Lighting Effects",
			Description:  "Dynamic lights and real-time shadows",
			Level:        models.LevelAdvanced,
			Difficulty:   "Hard",
			Preview:      "Lights & shadows",
			SceneName:    "LightingScene",
			Technologies: []string{"Lighting", "Shaders", "Pipeline"},
			CodeExample: `// Enable the lights pipeline
this.lights.enable();
this.lights.setAmbientColor(0x404040);

// Create a dynamic light
const light = this.lights.addLight(x, y, 200)
    .setColor(0xffffff)
    .setIntensity(1);

// Sprites with lighting
this.player.setPipeline('Light2D');`,
		},
	}
}
