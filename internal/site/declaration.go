package site

// Declare returns the project's navigation: the Chinese edition of the
// "Learn Wgpu" tutorial site.
func Declare() *SiteConfig {
	return &SiteConfig{
		BasePath: "/learn-wgpu-cn/",
		Title:    "学习 Wgpu",
		Theme:    "thindark",
		Plugins: map[string]PluginSetting{
			"vuepress-plugin-code-copy": Enabled(),
			"@vuepress/back-to-top":     Enabled(),
			"seo":                       WithOptions(map[string]any{}),
		},
		ThemeConfig: ThemeConfig{
			Author: Author{
				Name:    "Benjamin Hansen",
				Contact: "https://twitter.com/sotrh760",
			},
			DisplayAllHeaders: false,
			LastUpdated:       LastUpdatedLabel("Last Updated"),
			Sidebar: Sidebar{
				LinkEntry("/"),
				GroupEntry{
					Title: "入门",
					Children: Sidebar{
						LinkEntry("/beginner/tutorial1-window/"),
						LinkEntry("/beginner/tutorial2-surface/"),
						LinkEntry("/beginner/tutorial3-pipeline/"),
						LinkEntry("/beginner/tutorial4-buffer/"),
						LinkEntry("/beginner/tutorial5-textures/"),
						LinkEntry("/beginner/tutorial6-uniforms/"),
						LinkEntry("/beginner/tutorial7-instancing/"),
						LinkEntry("/beginner/tutorial8-depth/"),
						LinkEntry("/beginner/tutorial9-models/"),
					},
				},
				GroupEntry{
					Title: "进阶",
					Children: Sidebar{
						LinkEntry("/intermediate/tutorial10-lighting/"),
						LinkEntry("/intermediate/tutorial11-normals/"),
						LinkEntry("/intermediate/tutorial12-camera/"),
						LinkEntry("/intermediate/tutorial13-threading/"),
					},
				},
				GroupEntry{
					Title:       "案例展示",
					Collapsable: true,
					Children: Sidebar{
						LinkEntry("/showcase/"),
						LinkEntry("/showcase/windowless/"),
						LinkEntry("/showcase/gifs/"),
						LinkEntry("/showcase/pong/"),
						LinkEntry("/showcase/compute/"),
						LinkEntry("/showcase/alignment/"),
						// LinkEntry("/showcase/imgui-demo/"),
					},
				},
				GroupEntry{
					Title:       "更新动态",
					Collapsable: true,
					Children: Sidebar{
						LinkEntry("/news/0.12/"),
						LinkEntry("/news/pre-0.12/"),
					},
				},
			},
		},
	}
}
