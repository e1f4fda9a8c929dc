package form

import "route-form-service/internal/domain"

// Render replaces the displayed route with result and reveals the map link.
func (c *Controller) Render(result domain.SolverResult) {
	c.routeList.ReplaceChildren()
	for _, loc := range result.BestPath {
		li := c.doc.CreateElement("li")
		li.SetTextContent(loc)
		c.routeList.AppendChild(li)
	}

	c.distance.SetTextContent(result.DistanceLabel())

	c.mapLink.SetAttribute("href", result.GoogleMapsURL)
	c.mapLink.SetStyle("display", "block")

	c.mu.Lock()
	c.state = StateResultShown
	c.mu.Unlock()
}
